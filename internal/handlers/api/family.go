package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"scamshield/internal/db"
	"scamshield/internal/models"
	"scamshield/internal/validation"
)

// ContactStore is an interface for registering family contacts.
type ContactStore interface {
	GetContactByPhone(ctx context.Context, phone string) (*models.FamilyContact, error)
	CreateContact(ctx context.Context, contact *models.FamilyContact) error
}

// FamilyHandler handles family contact registration via JSON API.
type FamilyHandler struct {
	store ContactStore
}

// NewFamilyHandler creates a new family contact handler.
func NewFamilyHandler(store ContactStore) *FamilyHandler {
	return &FamilyHandler{store: store}
}

// SaveFamily registers a family contact phone number. Registering a number
// that already exists is a normal outcome, not an error.
func (h *FamilyHandler) SaveFamily(c fiber.Ctx) error {
	var body struct {
		Phone string `json:"phone"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
	}

	if body.Phone == "" {
		return jsonError(c, fiber.StatusBadRequest, "전화번호를 입력해야 합니다.")
	}

	phone, ok := validation.ValidatePhone(body.Phone)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "유효한 전화번호 형식이어야 합니다.")
	}

	_, err := h.store.GetContactByPhone(c.Context(), phone)
	if err == nil {
		return jsonStatus(c, false, "이미 등록된 번호입니다.")
	}
	if !errors.Is(err, db.ErrContactNotFound) {
		return jsonError(c, fiber.StatusInternalServerError, "DB 저장 실패")
	}

	contact := &models.FamilyContact{Phone: phone}
	if err := h.store.CreateContact(c.Context(), contact); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "DB 저장 실패")
	}

	return jsonStatus(c, true, "가족 연락처가 저장되었습니다.")
}
