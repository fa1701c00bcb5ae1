package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"scamshield/internal/config"
	"scamshield/internal/models"
	"scamshield/internal/validation"
)

// ReportStore is an interface for recording reports and promoting values to
// the blocklist.
type ReportStore interface {
	UpsertReport(ctx context.Context, reportType, value string) (int, error)
	InsertSourceIgnoreDuplicate(ctx context.Context, sourceType, value string) error
}

// ReportHandler handles crowd-sourced scam reports via JSON API.
type ReportHandler struct {
	store     ReportStore
	threshold int
}

// NewReportHandler creates a new report handler.
func NewReportHandler(store ReportStore, cfg *config.Config) *ReportHandler {
	return &ReportHandler{store: store, threshold: cfg.PromotionThreshold}
}

// Report records one report for a (type, value) pair. Once the count reaches
// the promotion threshold the value is added to the blocklist; re-reporting an
// already promoted value never duplicates the blocklist row.
func (h *ReportHandler) Report(c fiber.Ctx) error {
	var body struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
	}

	if body.Type == "" || body.Value == "" {
		return jsonError(c, fiber.StatusBadRequest, "타입과 값을 입력해야 합니다.")
	}

	if !validation.ValidReportType(body.Type) {
		return jsonError(c, fiber.StatusBadRequest, "유효하지 않은 신고 유형입니다.")
	}

	value := validation.NormalizeReportValue(body.Type, body.Value)
	if value == "" {
		return jsonError(c, fiber.StatusBadRequest, "유효한 신고 값이어야 합니다.")
	}

	count, err := h.store.UpsertReport(c.Context(), body.Type, value)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "DB 저장 실패")
	}

	if count >= h.threshold {
		if err := h.store.InsertSourceIgnoreDuplicate(c.Context(), body.Type, value); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "DB 저장 실패")
		}
		return c.JSON(models.ReportResponse{
			Success:     true,
			Message:     fmt.Sprintf("🚨 %d회 이상 신고되어 위험 데이터베이스에 등록되었습니다!", h.threshold),
			ReportCount: count,
		})
	}

	return c.JSON(models.ReportResponse{
		Success:     true,
		Message:     fmt.Sprintf("✅ 신고 접수됨 (누적 %d회)", count),
		ReportCount: count,
	})
}
