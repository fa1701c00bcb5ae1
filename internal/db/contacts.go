package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"scamshield/internal/models"
)

// GetAllContactPhones returns every registered family contact phone number.
func (d *DB) GetAllContactPhones(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `SELECT phone FROM family_contacts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phones []string
	for rows.Next() {
		var phone string
		if err := rows.Scan(&phone); err != nil {
			return nil, err
		}
		phones = append(phones, phone)
	}
	return phones, rows.Err()
}

// GetContactByPhone retrieves a family contact by phone number.
func (d *DB) GetContactByPhone(ctx context.Context, phone string) (*models.FamilyContact, error) {
	var c models.FamilyContact
	err := d.Pool.QueryRow(ctx, `
		SELECT id, phone, created_at FROM family_contacts WHERE phone = $1
	`, phone).Scan(&c.ID, &c.Phone, &c.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// CreateContact registers a new family contact.
func (d *DB) CreateContact(ctx context.Context, contact *models.FamilyContact) error {
	return d.Pool.QueryRow(ctx, `
		INSERT INTO family_contacts (phone) VALUES ($1)
		RETURNING id, created_at
	`, contact.Phone).Scan(&contact.ID, &contact.CreatedAt)
}

// GetContactCount returns the total number of registered contacts.
func (d *DB) GetContactCount(ctx context.Context) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM family_contacts`).Scan(&count)
	return count, err
}
