package seller

import (
	"time"

	"github.com/google/uuid"
)

// Seller represents a seller account and its storefront details.
type Seller struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	StoreName    string    `json:"store_name"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for creating a seller account.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	StoreName   string `json:"store_name"`
	Address     string `json:"address"`
}

// UpdateRequest is the payload for updating a seller's profile.
type UpdateRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	StoreName   string `json:"store_name"`
	Address     string `json:"address"`
}
