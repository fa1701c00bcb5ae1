package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"scamshield/internal/db"
	"scamshield/internal/models"
)

type fakeContactStore struct {
	contacts map[string]*models.FamilyContact
	err      error
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{contacts: make(map[string]*models.FamilyContact)}
}

func (f *fakeContactStore) GetContactByPhone(_ context.Context, phone string) (*models.FamilyContact, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.contacts[phone]; ok {
		return c, nil
	}
	return nil, db.ErrContactNotFound
}

func (f *fakeContactStore) CreateContact(_ context.Context, contact *models.FamilyContact) error {
	if f.err != nil {
		return f.err
	}
	f.contacts[contact.Phone] = contact
	return nil
}

func newFamilyApp(store ContactStore) *fiber.App {
	app := fiber.New()
	app.Post("/api/save-family", NewFamilyHandler(store).SaveFamily)
	return app
}

func TestSaveFamily(t *testing.T) {
	store := newFakeContactStore()
	app := newFamilyApp(store)

	resp := postJSON(t, app, "/api/save-family", `{"phone":"010-1234-5678"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)

	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Message != "가족 연락처가 저장되었습니다." {
		t.Errorf("message = %q", body.Message)
	}

	// Stored digits-only
	if _, ok := store.contacts["01012345678"]; !ok {
		t.Error("contact not stored with normalized phone")
	}
}

func TestSaveFamily_DuplicateIsNormalOutcome(t *testing.T) {
	store := newFakeContactStore()
	app := newFamilyApp(store)

	postJSON(t, app, "/api/save-family", `{"phone":"01012345678"}`)

	// Same number again, differently formatted
	resp := postJSON(t, app, "/api/save-family", `{"phone":"010-1234-5678"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (duplicate is not an error)", resp.StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)

	if body.Success {
		t.Error("success = true, want false for duplicate")
	}
	if body.Message != "이미 등록된 번호입니다." {
		t.Errorf("message = %q, want 이미 등록된 번호입니다.", body.Message)
	}
	if len(store.contacts) != 1 {
		t.Errorf("contact rows = %d, want 1 (no duplicate row)", len(store.contacts))
	}
}

func TestSaveFamily_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing phone", `{}`},
		{"empty phone", `{"phone":""}`},
		{"no digits", `{"phone":"abc-def"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newFamilyApp(newFakeContactStore())

			resp := postJSON(t, app, "/api/save-family", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestSaveFamily_StorageError(t *testing.T) {
	store := newFakeContactStore()
	store.err = errors.New("connection refused")
	app := newFamilyApp(store)

	resp := postJSON(t, app, "/api/save-family", `{"phone":"01012345678"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}
