package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"scamshield/internal/models"
)

// UpsertReport records one report for a (type, value) pair and returns the
// resulting count. A first report inserts the row with count 1; subsequent
// reports increment atomically.
func (d *DB) UpsertReport(ctx context.Context, reportType, value string) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO scam_reports (type, value)
		VALUES ($1, $2)
		ON CONFLICT (type, value) DO UPDATE
		SET report_count = scam_reports.report_count + 1, updated_at = NOW()
		RETURNING report_count
	`, reportType, value).Scan(&count)
	return count, err
}

// GetReport retrieves a report row by (type, value).
func (d *DB) GetReport(ctx context.Context, reportType, value string) (*models.ScamReport, error) {
	var r models.ScamReport
	err := d.Pool.QueryRow(ctx, `
		SELECT id, type, value, report_count, created_at, updated_at
		FROM scam_reports WHERE type = $1 AND value = $2
	`, reportType, value).Scan(&r.ID, &r.Type, &r.Value, &r.ReportCount, &r.CreatedAt, &r.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// GetAllReports returns all report rows, most-reported first.
func (d *DB) GetAllReports(ctx context.Context) ([]models.ScamReport, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, type, value, report_count, created_at, updated_at
		FROM scam_reports ORDER BY report_count DESC, updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []models.ScamReport
	for rows.Next() {
		var r models.ScamReport
		if err := rows.Scan(&r.ID, &r.Type, &r.Value, &r.ReportCount, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}
