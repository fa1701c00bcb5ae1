// Package classifier decides whether a message is safe or risky by matching
// it against the blocklisted keywords, phone numbers, and account numbers.
package classifier

import (
	"context"
	"fmt"
	"strings"

	"scamshield/internal/models"
	"scamshield/internal/validation"
)

// Risk verdict constants, returned verbatim to API clients.
const (
	RiskSafe  = "안전"
	RiskRisky = "위험"
)

// BlocklistStore is an interface for reading the blocklist tables.
type BlocklistStore interface {
	GetAllKeywords(ctx context.Context) ([]string, error)
	GetSourceValuesByType(ctx context.Context, sourceType string) ([]string, error)
}

// Alerter is an interface for notifying family contacts about a risky message.
type Alerter interface {
	AlertContacts(ctx context.Context, message string) error
}

// Classifier evaluates messages against the blocklist and triggers family
// alerts on a risky verdict.
type Classifier struct {
	store   BlocklistStore
	alerter Alerter
}

// New creates a new classifier.
func New(store BlocklistStore, alerter Alerter) *Classifier {
	return &Classifier{store: store, alerter: alerter}
}

// Classify runs all three blocklist checks against the message and returns the
// verdict. Every check is evaluated even after a match. On a risky verdict the
// family contacts are alerted before the verdict is returned; a storage failure
// in any step aborts the whole check with no verdict.
func (c *Classifier) Classify(ctx context.Context, message string) (string, error) {
	risky := false

	keywords, err := c.store.GetAllKeywords(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load keywords: %w", err)
	}
	if containsAny(message, keywords) {
		risky = true
	}

	phones, err := c.store.GetSourceValuesByType(ctx, models.SourceTypePhone)
	if err != nil {
		return "", fmt.Errorf("failed to load phone sources: %w", err)
	}
	if matchesPhone(message, phones) {
		risky = true
	}

	accounts, err := c.store.GetSourceValuesByType(ctx, models.SourceTypeAccount)
	if err != nil {
		return "", fmt.Errorf("failed to load account sources: %w", err)
	}
	if containsAny(message, accounts) {
		risky = true
	}

	if !risky {
		return RiskSafe, nil
	}

	if err := c.alerter.AlertContacts(ctx, message); err != nil {
		return "", err
	}

	return RiskRisky, nil
}

// containsAny reports whether the message contains any of the values as a
// literal substring.
func containsAny(message string, values []string) bool {
	for _, v := range values {
		if v == "" {
			continue
		}
		if strings.Contains(message, v) {
			return true
		}
	}
	return false
}

// matchesPhone strips every non-digit from both the message and the stored
// values, so "010-1234-5678" in the blocklist matches "01012345678" in a
// message and vice versa.
func matchesPhone(message string, phones []string) bool {
	digits := validation.NormalizeDigits(message)
	for _, p := range phones {
		normalized := validation.NormalizeDigits(p)
		if normalized == "" {
			continue
		}
		if strings.Contains(digits, normalized) {
			return true
		}
	}
	return false
}
