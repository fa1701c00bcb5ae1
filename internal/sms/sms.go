package sms

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"scamshield/internal/config"
)

// ErrNotConfigured is returned when a send is attempted without provider credentials.
var ErrNotConfigured = errors.New("sms provider is not configured")

// SendResponse is the provider's reply to a single-message send.
type SendResponse struct {
	GroupID       string `json:"groupId,omitempty"`
	MessageID     string `json:"messageId,omitempty"`
	AccountID     string `json:"accountId,omitempty"`
	StatusCode    string `json:"statusCode,omitempty"`
	StatusMessage string `json:"statusMessage,omitempty"`
	To            string `json:"to,omitempty"`
	From          string `json:"from,omitempty"`
}

// Service sends text messages through the Solapi REST API.
type Service struct {
	cfg     *config.Config
	client  *http.Client
	enabled bool
}

// NewService creates a new SMS service.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		cfg:     cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		enabled: cfg.IsSMSEnabled(),
	}

	if s.enabled {
		log.Printf("SMS notifications enabled (sender: %s)", cfg.SMSSender)
	} else {
		log.Println("SMS notifications disabled (Solapi credentials not configured)")
	}

	return s
}

// IsEnabled returns true if the provider is configured.
func (s *Service) IsEnabled() bool {
	return s.enabled
}

// SendMessage sends a single text message to one recipient and returns the
// provider's response.
func (s *Service) SendMessage(ctx context.Context, to, text string) (*SendResponse, error) {
	if !s.enabled {
		return nil, ErrNotConfigured
	}

	payload := map[string]any{
		"message": map[string]string{
			"to":   to,
			"from": s.cfg.SMSSender,
			"text": text,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.SolapiBaseURL+"/messages/v4/send", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.authorization(time.Now()))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var provErr struct {
			ErrorCode    string `json:"errorCode"`
			ErrorMessage string `json:"errorMessage"`
		}
		if err := json.Unmarshal(respBody, &provErr); err == nil && provErr.ErrorMessage != "" {
			return nil, fmt.Errorf("solapi: %s (%s)", provErr.ErrorMessage, provErr.ErrorCode)
		}
		return nil, fmt.Errorf("solapi: HTTP %s", resp.Status)
	}

	var result SendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	return &result, nil
}

// authorization builds the Solapi HMAC-SHA256 Authorization header. The
// signature covers the concatenation of the RFC3339 date and a random salt.
func (s *Service) authorization(now time.Time) string {
	date := now.UTC().Format(time.RFC3339)
	salt := uuid.NewString()

	mac := hmac.New(sha256.New, []byte(s.cfg.SolapiAPISecret))
	mac.Write([]byte(date + salt))
	signature := hex.EncodeToString(mac.Sum(nil))

	return fmt.Sprintf("HMAC-SHA256 apiKey=%s, date=%s, salt=%s, signature=%s",
		s.cfg.SolapiAPIKey, date, salt, signature)
}
