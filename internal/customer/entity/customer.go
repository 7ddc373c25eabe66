package entity

import "time"

// Profile is the customer-facing view of an account row.
type Profile struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
}

// ProfileUpdate carries the fields a customer may change; empty fields are
// left untouched.
type ProfileUpdate struct {
	AccountID int64
	Name      string
	Email     string
}

type Address struct {
	ID        int64
	AccountID int64
	Street    string
	City      string
	State     string
	Pincode   string
	Country   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DirectoryEntry is an admin-facing aggregate of one customer.
type DirectoryEntry struct {
	ID           int64
	Name         string
	Phone        string
	AddressCount int64
	JoinedAt     time.Time
}
