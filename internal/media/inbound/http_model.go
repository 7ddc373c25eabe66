package inbound

type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type PresignResponse struct {
	URL string `json:"url"`
}
