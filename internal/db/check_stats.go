package db

import (
	"context"

	"scamshield/internal/models"
)

// IncrementCheckOutcome upserts a message check count by outcome.
func (d *DB) IncrementCheckOutcome(ctx context.Context, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO check_outcomes (outcome, count, last_seen_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (outcome) DO UPDATE
		SET count = check_outcomes.count + 1, last_seen_at = NOW()
	`, outcome)
	return err
}

// GetAllCheckOutcomes returns all check outcome rows for metrics export.
func (d *DB) GetAllCheckOutcomes(ctx context.Context) ([]models.CheckOutcome, error) {
	rows, err := d.Pool.Query(ctx, `SELECT outcome, count, last_seen_at FROM check_outcomes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []models.CheckOutcome
	for rows.Next() {
		var o models.CheckOutcome
		if err := rows.Scan(&o.Outcome, &o.Count, &o.LastSeenAt); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}
