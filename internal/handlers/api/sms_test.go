package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"scamshield/internal/sms"
)

type fakeVerifier struct {
	gotMsg string
	err    error
}

func (f *fakeVerifier) RequestVerification(_ context.Context, message string) error {
	f.gotMsg = message
	return f.err
}

type fakeDirectSender struct {
	gotTo   string
	gotText string
	resp    *sms.SendResponse
	err     error
}

func (f *fakeDirectSender) SendMessage(_ context.Context, to, text string) (*sms.SendResponse, error) {
	f.gotTo = to
	f.gotText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newSMSApp(verifier VerificationNotifier, sender DirectSender) *fiber.App {
	app := fiber.New()
	h := NewSMSHandler(verifier, sender)
	app.Post("/api/request-check", h.RequestCheck)
	app.Post("/api/send-sms", h.Send)
	return app
}

func TestRequestCheck(t *testing.T) {
	verifier := &fakeVerifier{}
	app := newSMSApp(verifier, &fakeDirectSender{})

	resp := postJSON(t, app, "/api/request-check", `{"message":"500만원 입금 요청 문자"}`)
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
	if body.Message != "보호자에게 확인 요청이 전송되었습니다." {
		t.Errorf("message = %q", body.Message)
	}
	if verifier.gotMsg != "500만원 입금 요청 문자" {
		t.Errorf("verifier received %q, want original message", verifier.gotMsg)
	}
}

func TestRequestCheck_MissingMessage(t *testing.T) {
	app := newSMSApp(&fakeVerifier{}, &fakeDirectSender{})

	resp := postJSON(t, app, "/api/request-check", `{}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRequestCheck_StoreFailure(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("connection refused")}
	app := newSMSApp(verifier, &fakeDirectSender{})

	resp := postJSON(t, app, "/api/request-check", `{"message":"의심 문자"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestSend(t *testing.T) {
	sender := &fakeDirectSender{
		resp: &sms.SendResponse{MessageID: "M42", StatusCode: "2000", To: "01012345678"},
	}
	app := newSMSApp(&fakeVerifier{}, sender)

	resp := postJSON(t, app, "/api/send-sms", `{"to":"01012345678","message":"안부 문자"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Success  bool              `json:"success"`
		Response *sms.SendResponse `json:"response"`
	}
	decodeBody(t, resp, &body)

	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Response == nil || body.Response.MessageID != "M42" {
		t.Errorf("response = %+v, want provider response passthrough", body.Response)
	}
	if sender.gotTo != "01012345678" || sender.gotText != "안부 문자" {
		t.Errorf("sender got (%q, %q), want request values", sender.gotTo, sender.gotText)
	}
}

func TestSend_ProviderError(t *testing.T) {
	sender := &fakeDirectSender{err: errors.New("solapi: 수신번호가 올바르지 않습니다. (ValidationError)")}
	app := newSMSApp(&fakeVerifier{}, sender)

	resp := postJSON(t, app, "/api/send-sms", `{"to":"bad","message":"hi"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	decodeBody(t, resp, &body)

	if body.Success {
		t.Error("success = true, want false")
	}
	if body.Error == "" {
		t.Error("error message missing from provider failure response")
	}
}

func TestSend_MissingFields(t *testing.T) {
	app := newSMSApp(&fakeVerifier{}, &fakeDirectSender{})

	resp := postJSON(t, app, "/api/send-sms", `{"to":"01012345678"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
