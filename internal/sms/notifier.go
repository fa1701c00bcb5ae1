package sms

import (
	"context"
	"fmt"
	"log/slog"
)

// Message templates for the two notification triggers.
const (
	alertTemplate  = "🚨 [경고] 위험 메시지 감지됨: %s"
	verifyTemplate = "📩 시니어가 확인 요청한 메시지입니다:\n\"%s\"\n\n※ 실제 송금 전 반드시 확인해주세요."
)

// ContactLister is an interface for loading family contact phone numbers.
type ContactLister interface {
	GetAllContactPhones(ctx context.Context) ([]string, error)
}

// Sender is an interface for sending a single text message.
type Sender interface {
	SendMessage(ctx context.Context, to, text string) (*SendResponse, error)
	IsEnabled() bool
}

// Notifier fans out alerts to every registered family contact.
type Notifier struct {
	sender   Sender
	contacts ContactLister
}

// NewNotifier creates a new SMS notifier.
func NewNotifier(sender Sender, contacts ContactLister) *Notifier {
	return &Notifier{sender: sender, contacts: contacts}
}

// AlertContacts sends the risk-detected alert for a flagged message to every
// family contact. Returns an error only if the contact list cannot be loaded;
// individual delivery failures are logged and do not stop the fan-out.
func (n *Notifier) AlertContacts(ctx context.Context, message string) error {
	phones, err := n.contacts.GetAllContactPhones(ctx)
	if err != nil {
		return fmt.Errorf("failed to load family contacts: %w", err)
	}

	n.fanOut(ctx, phones, fmt.Sprintf(alertTemplate, message))
	return nil
}

// RequestVerification relays a "please verify this message" request from the
// user to every family contact. Same delivery mechanics as AlertContacts.
func (n *Notifier) RequestVerification(ctx context.Context, message string) error {
	phones, err := n.contacts.GetAllContactPhones(ctx)
	if err != nil {
		return fmt.Errorf("failed to load family contacts: %w", err)
	}

	n.fanOut(ctx, phones, fmt.Sprintf(verifyTemplate, message))
	return nil
}

// fanOut delivers one text to each contact sequentially. A failure for one
// contact must not stop delivery to the rest, so errors are logged and swallowed.
func (n *Notifier) fanOut(ctx context.Context, phones []string, text string) {
	if len(phones) == 0 {
		return
	}

	if !n.sender.IsEnabled() {
		slog.Warn("sms provider disabled, skipping family notification", "recipients", len(phones))
		return
	}

	for _, phone := range phones {
		if _, err := n.sender.SendMessage(ctx, phone, text); err != nil {
			slog.Error("failed to send sms", "phone", phone, "error", err)
			continue
		}
		slog.Info("sms sent", "phone", phone)
	}
}
