package sms

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeLister struct {
	phones []string
	err    error
}

func (f *fakeLister) GetAllContactPhones(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.phones, nil
}

type fakeSender struct {
	enabled  bool
	failFor  map[string]bool
	sent     []string // phone numbers attempted
	lastText string
}

func (f *fakeSender) SendMessage(_ context.Context, to, text string) (*SendResponse, error) {
	f.sent = append(f.sent, to)
	f.lastText = text
	if f.failFor[to] {
		return nil, errors.New("delivery failed")
	}
	return &SendResponse{MessageID: "M1", To: to}, nil
}

func (f *fakeSender) IsEnabled() bool {
	return f.enabled
}

func TestAlertContacts_FansOutToEveryContact(t *testing.T) {
	sender := &fakeSender{enabled: true}
	lister := &fakeLister{phones: []string{"01011112222", "01033334444", "01055556666"}}
	notifier := NewNotifier(sender, lister)

	message := "무료건강검진 이벤트 참여하세요"
	if err := notifier.AlertContacts(context.Background(), message); err != nil {
		t.Fatalf("AlertContacts() error = %v", err)
	}

	if len(sender.sent) != 3 {
		t.Fatalf("sent to %d contacts, want 3", len(sender.sent))
	}
	if !strings.Contains(sender.lastText, message) {
		t.Errorf("alert text %q does not contain original message", sender.lastText)
	}
	if !strings.Contains(sender.lastText, "위험 메시지 감지됨") {
		t.Errorf("alert text %q missing alert template", sender.lastText)
	}
}

func TestAlertContacts_DeliveryFailureDoesNotStopFanOut(t *testing.T) {
	sender := &fakeSender{
		enabled: true,
		failFor: map[string]bool{"01011112222": true},
	}
	lister := &fakeLister{phones: []string{"01011112222", "01033334444"}}
	notifier := NewNotifier(sender, lister)

	if err := notifier.AlertContacts(context.Background(), "위험 문자"); err != nil {
		t.Fatalf("AlertContacts() error = %v, want nil despite per-contact failure", err)
	}

	if len(sender.sent) != 2 {
		t.Errorf("sent attempts = %d, want 2 (failure must not stop fan-out)", len(sender.sent))
	}
}

func TestAlertContacts_ContactLoadFailure(t *testing.T) {
	sender := &fakeSender{enabled: true}
	lister := &fakeLister{err: errors.New("connection refused")}
	notifier := NewNotifier(sender, lister)

	if err := notifier.AlertContacts(context.Background(), "위험 문자"); err == nil {
		t.Fatal("AlertContacts() expected error when contact list cannot be loaded")
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent attempts = %d, want 0 on store failure", len(sender.sent))
	}
}

func TestAlertContacts_DisabledSenderSkipsQuietly(t *testing.T) {
	sender := &fakeSender{enabled: false}
	lister := &fakeLister{phones: []string{"01011112222"}}
	notifier := NewNotifier(sender, lister)

	if err := notifier.AlertContacts(context.Background(), "위험 문자"); err != nil {
		t.Fatalf("AlertContacts() error = %v, want nil when provider disabled", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent attempts = %d, want 0 when provider disabled", len(sender.sent))
	}
}

func TestRequestVerification_UsesVerifyTemplate(t *testing.T) {
	sender := &fakeSender{enabled: true}
	lister := &fakeLister{phones: []string{"01011112222"}}
	notifier := NewNotifier(sender, lister)

	message := "계좌로 500만원 보내주세요"
	if err := notifier.RequestVerification(context.Background(), message); err != nil {
		t.Fatalf("RequestVerification() error = %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent attempts = %d, want 1", len(sender.sent))
	}
	if !strings.Contains(sender.lastText, message) {
		t.Errorf("verify text %q does not contain original message", sender.lastText)
	}
	if !strings.Contains(sender.lastText, "확인 요청한 메시지") {
		t.Errorf("verify text %q missing verify template", sender.lastText)
	}
}

func TestNotifier_NoContacts(t *testing.T) {
	sender := &fakeSender{enabled: true}
	lister := &fakeLister{}
	notifier := NewNotifier(sender, lister)

	if err := notifier.AlertContacts(context.Background(), "위험 문자"); err != nil {
		t.Fatalf("AlertContacts() error = %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent attempts = %d, want 0 with no contacts", len(sender.sent))
	}
}
