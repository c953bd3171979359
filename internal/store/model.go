package store

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Store struct {
	ID          string
	OwnerID     string
	Name        string
	Username    string
	Description string
	Email       string
	Contact     string
	Address     string
	Logo        string
	Status      Status
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SubmitInput is the seller-provided draft. Logo is an already-uploaded
// blob URL, never a binary payload.
type SubmitInput struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Contact     string `json:"contact"`
	Address     string `json:"address"`
	Logo        string `json:"logo"`
}
