// Package mail sends the account verification email. The Sender interface
// keeps the HTTP layer independent of Mailgun so handler tests can use a
// recording stub.
package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// sendTimeout bounds a single delivery attempt. Failures are surfaced to
// the caller and never retried here.
const sendTimeout = 30 * time.Second

var (
	// ErrNotConfigured is returned when the API key or domain is absent.
	ErrNotConfigured = errors.New("email service not configured")

	// ErrSendFailed wraps delivery failures from the email provider.
	ErrSendFailed = errors.New("email service error")
)

// Sender delivers a verification email carrying the given verification URL.
type Sender interface {
	SendVerification(ctx context.Context, email, firstName, verificationURL string) error
}

// MailgunSender delivers mail through the Mailgun messages API.
type MailgunSender struct {
	mg     mailgun.Mailgun
	domain string
}

// NewMailgunSender creates a sender for the domain. Missing credentials are
// tolerated at construction; sends will fail with ErrNotConfigured.
func NewMailgunSender(domain, apiKey string) *MailgunSender {
	var mg mailgun.Mailgun
	if domain != "" && apiKey != "" {
		mg = mailgun.NewMailgun(domain, apiKey)
	}
	return &MailgunSender{mg: mg, domain: domain}
}

// Configured reports whether the sender holds usable credentials.
func (s *MailgunSender) Configured() bool {
	return s.mg != nil
}

// SendVerification sends the verification email with both HTML and plain
// text bodies, tagged for delivery analytics.
func (s *MailgunSender) SendVerification(ctx context.Context, email, firstName, verificationURL string) error {
	if s.mg == nil {
		return ErrNotConfigured
	}

	from := fmt.Sprintf("Promptforge <noreply@%s>", s.domain)
	m := s.mg.NewMessage(from, VerificationSubject, VerificationText(firstName, verificationURL), email)
	m.SetHtml(VerificationHTML(firstName, verificationURL))
	m.AddTag("verification", "signup")
	m.SetTracking(true)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if _, _, err := s.mg.Send(ctx, m); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
