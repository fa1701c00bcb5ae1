package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"scamshield/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Ping checks database connectivity.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevBlocklist inserts sample blocklist entries for development.
// Skips entries that already exist.
func (d *DB) SeedDevBlocklist(ctx context.Context) error {
	keywords := []string{
		"무료건강검진",
		"정부지원금",
		"대출 승인",
		"택배 주소 불일치",
	}

	for _, kw := range keywords {
		_, err := d.Pool.Exec(ctx, `
			INSERT INTO scam_keywords (keyword) VALUES ($1)
			ON CONFLICT (keyword) DO NOTHING
		`, kw)
		if err != nil {
			return fmt.Errorf("failed to seed keyword %s: %w", kw, err)
		}
	}

	sources := []struct {
		sourceType string
		value      string
	}{
		{"phone", "01000000000"},
		{"account", "000-00-000000"},
	}

	for _, src := range sources {
		_, err := d.Pool.Exec(ctx, `
			INSERT INTO scam_sources (type, value) VALUES ($1, $2)
			ON CONFLICT (type, value) DO NOTHING
		`, src.sourceType, src.value)
		if err != nil {
			return fmt.Errorf("failed to seed source %s: %w", src.value, err)
		}
	}

	return nil
}
