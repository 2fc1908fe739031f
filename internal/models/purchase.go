package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase statuses
const (
	PurchasePending   = "pending"
	PurchaseCompleted = "completed"
	PurchaseFailed    = "failed"
)

// PurchaseDB represents a credit-pack transaction row in the database.
// Not yet wired to a live payment processor.
type PurchaseDB struct {
	PurchaseID uuid.UUID `json:"id" db:"purchase_id"`        // Primary key
	UserID     uuid.UUID `json:"user_id" db:"user_id"`       // Owning profile
	Amount     float64   `json:"amount" db:"amount"`         // Amount paid
	Credits    int64     `json:"credits" db:"credits"`       // Credits granted
	Status     string    `json:"status" db:"status"`         // pending, completed, failed
	CreatedAt  time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
