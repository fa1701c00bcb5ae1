package models

import (
	"time"

	"github.com/google/uuid"
)

// Scam source type constants
const (
	SourceTypePhone   = "phone"
	SourceTypeAccount = "account"
)

// ScamKeyword is a literal phrase that marks a message as risky.
// Keywords are seeded out-of-band and read-only to the classifier.
type ScamKeyword struct {
	ID        uuid.UUID `json:"id"`
	Keyword   string    `json:"keyword"`
	CreatedAt time.Time `json:"created_at"`
}

// ScamSource is a phone or account number known to be associated with fraud.
// Rows are created by report promotion or out-of-band seeding.
type ScamSource struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"` // phone, account
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
