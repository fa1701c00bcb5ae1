package api

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"scamshield/internal/sms"
)

// VerificationNotifier is an interface for relaying a verification request to
// the family contacts.
type VerificationNotifier interface {
	RequestVerification(ctx context.Context, message string) error
}

// DirectSender is an interface for sending a single text message.
type DirectSender interface {
	SendMessage(ctx context.Context, to, text string) (*sms.SendResponse, error)
}

// SMSHandler handles the verification relay and direct SMS endpoints.
type SMSHandler struct {
	notifier VerificationNotifier
	sender   DirectSender
}

// NewSMSHandler creates a new SMS handler.
func NewSMSHandler(notifier VerificationNotifier, sender DirectSender) *SMSHandler {
	return &SMSHandler{notifier: notifier, sender: sender}
}

// RequestCheck forwards a suspicious message to every family contact with a
// "please verify" note. Individual delivery failures do not fail the request.
func (h *SMSHandler) RequestCheck(c fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
	}

	if body.Message == "" {
		return jsonError(c, fiber.StatusBadRequest, "확인할 메시지가 필요합니다.")
	}

	if err := h.notifier.RequestVerification(c.Context(), body.Message); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "요청 처리 실패")
	}

	return jsonStatus(c, true, "보호자에게 확인 요청이 전송되었습니다.")
}

// Send is a passthrough to the SMS provider for one explicit recipient.
func (h *SMSHandler) Send(c fiber.Ctx) error {
	var body struct {
		To      string `json:"to"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
	}

	if body.To == "" || body.Message == "" {
		return jsonError(c, fiber.StatusBadRequest, "수신자와 메시지를 입력해야 합니다.")
	}

	resp, err := h.sender.SendMessage(c.Context(), body.To, body.Message)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"response": resp,
	})
}
