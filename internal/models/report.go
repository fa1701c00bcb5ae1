package models

import (
	"time"

	"github.com/google/uuid"
)

// ScamReport is a crowd-sourced report counter, unique per (type, value).
// The count only ever increases; rows are never deleted.
type ScamReport struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Value       string    `json:"value"`
	ReportCount int       `json:"report_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
