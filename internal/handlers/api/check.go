package api

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"scamshield/internal/classifier"
	"scamshield/internal/metrics"
	"scamshield/internal/models"
)

// MessageClassifier is an interface for classifying a message.
type MessageClassifier interface {
	Classify(ctx context.Context, message string) (string, error)
}

// CheckHandler handles message risk checks via JSON API.
type CheckHandler struct {
	classifier MessageClassifier
}

// NewCheckHandler creates a new check handler.
func NewCheckHandler(clf MessageClassifier) *CheckHandler {
	return &CheckHandler{classifier: clf}
}

// Check classifies a message and echoes it back with the verdict. Family
// contacts have already been alerted by the classifier when the verdict is
// risky.
func (h *CheckHandler) Check(c fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
	}

	risk, err := h.classifier.Classify(c.Context(), body.Message)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "DB 조회 오류",
		})
	}

	outcome := models.OutcomeSafe
	if risk == classifier.RiskRisky {
		outcome = models.OutcomeRisky
	}
	metrics.RecordCheckOutcome(outcome)

	return c.JSON(models.CheckMessageResponse{
		Message: body.Message,
		Risk:    risk,
	})
}
