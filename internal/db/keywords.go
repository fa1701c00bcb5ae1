package db

import (
	"context"

	"scamshield/internal/models"
)

// GetAllKeywords returns every blocklisted keyword string.
func (d *DB) GetAllKeywords(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `SELECT keyword FROM scam_keywords`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, err
		}
		keywords = append(keywords, kw)
	}
	return keywords, rows.Err()
}

// GetAllKeywordRows returns all keyword rows with metadata.
func (d *DB) GetAllKeywordRows(ctx context.Context) ([]models.ScamKeyword, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, keyword, created_at FROM scam_keywords ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []models.ScamKeyword
	for rows.Next() {
		var k models.ScamKeyword
		if err := rows.Scan(&k.ID, &k.Keyword, &k.CreatedAt); err != nil {
			return nil, err
		}
		keywords = append(keywords, k)
	}
	return keywords, rows.Err()
}
