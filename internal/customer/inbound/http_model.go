package inbound

import "time"

type ProfileResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileUpdateRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

type AddressResponse struct {
	ID        int64     `json:"id,string"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AddressesResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}

type DirectoryEntryResponse struct {
	ID           int64     `json:"id,string"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	AddressCount int64     `json:"address_count"`
	JoinedAt     time.Time `json:"joined_at"`
}

type DirectoryResponse struct {
	Customers []DirectoryEntryResponse `json:"customers"`
}
