package db

import (
	"context"

	"scamshield/internal/models"
)

// GetSourceValuesByType returns all blocklisted values of the given type.
func (d *DB) GetSourceValuesByType(ctx context.Context, sourceType string) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `SELECT value FROM scam_sources WHERE type = $1`, sourceType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// InsertSourceIgnoreDuplicate adds a value to the blocklist. Inserting a
// (type, value) pair that already exists is a no-op, so promotion stays
// idempotent no matter how often the report threshold is re-crossed.
func (d *DB) InsertSourceIgnoreDuplicate(ctx context.Context, sourceType, value string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO scam_sources (type, value) VALUES ($1, $2)
		ON CONFLICT (type, value) DO NOTHING
	`, sourceType, value)
	return err
}

// GetSource retrieves a single blocklist row by (type, value).
func (d *DB) GetSource(ctx context.Context, sourceType, value string) (*models.ScamSource, error) {
	var s models.ScamSource
	err := d.Pool.QueryRow(ctx, `
		SELECT id, type, value, created_at FROM scam_sources
		WHERE type = $1 AND value = $2
	`, sourceType, value).Scan(&s.ID, &s.Type, &s.Value, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CountSources returns the number of blocklist rows for a (type, value) pair.
func (d *DB) CountSources(ctx context.Context, sourceType, value string) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM scam_sources WHERE type = $1 AND value = $2
	`, sourceType, value).Scan(&count)
	return count, err
}
