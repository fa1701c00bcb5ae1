package models

import (
	"time"

	"github.com/google/uuid"
)

// FamilyContact is a phone number registered to receive risk alerts.
// Phone numbers are stored digits-only.
type FamilyContact struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
