// internal/app/system/mailer/mailer.go

// Package mailer sends transactional mail (donation receipts) and newsletter
// issues over SMTP. All sends are best-effort: a failure is logged and never
// affects the transaction that requested the send.
package mailer

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Email is one outbound message.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers a single email. The newsletter and payment features depend
// on this interface so tests can substitute a recorder.
type Sender interface {
	Send(e Email) error
}

// Mailer is the production Sender backed by an SMTP dialer.
type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	log      *zap.Logger
}

// New builds a Mailer from SMTP settings.
func New(host string, port int, user, pass, from, fromName string, log *zap.Logger) *Mailer {
	return &Mailer{
		dialer:   gomail.NewDialer(host, port, user, pass),
		from:     from,
		fromName: fromName,
		log:      log,
	}
}

// Send delivers one email synchronously.
func (m *Mailer) Send(e Email) error {
	msg := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", e.To)
	msg.SetHeader("Subject", e.Subject)

	switch {
	case e.HTMLBody != "" && e.TextBody != "":
		msg.SetBody("text/plain", e.TextBody)
		msg.AddAlternative("text/html", e.HTMLBody)
	case e.HTMLBody != "":
		msg.SetBody("text/html", e.HTMLBody)
	default:
		msg.SetBody("text/plain", e.TextBody)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", e.To, err)
	}
	return nil
}

// SendAsync delivers the email on a background goroutine. Failure is logged
// and swallowed; the caller's transaction is already committed and must not
// be affected.
func SendAsync(s Sender, e Email, log *zap.Logger) {
	go func() {
		if err := s.Send(e); err != nil {
			log.Warn("best-effort email failed",
				zap.String("to", e.To),
				zap.String("subject", e.Subject),
				zap.Error(err))
		}
	}()
}
