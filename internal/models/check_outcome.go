package models

import "time"

// Check outcome constants
const (
	OutcomeSafe  = "safe"
	OutcomeRisky = "risky"
)

// CheckOutcome represents a per-outcome message check count.
type CheckOutcome struct {
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
