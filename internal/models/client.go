package models

import "time"

// ClientStatus marks whether a client is still being worked with.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

func IsValidClientStatus(s ClientStatus) bool {
	switch s {
	case ClientActive, ClientInactive:
		return true
	}
	return false
}

// Client represents a counterparty the business bills and works for.
type Client struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	Address   string       `json:"address,omitempty"`
	Company   string       `json:"company,omitempty"`
	Status    ClientStatus `json:"status"`
	LogoURL   string       `json:"logo_url,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	// Populated on detail reads only.
	Documents []Document `json:"documents,omitempty"`
}
