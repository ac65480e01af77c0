package mail

import (
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"
)

// SMTPSender delivers mail over SMTP. The circuit breaker stops the
// app from hammering a dead relay; while open, sends fail fast.
type SMTPSender struct {
	dialer  *gomail.Dialer
	from    string
	breaker *gobreaker.CircuitBreaker
}

// NewSMTPSender builds a sender for one relay.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "smtp-cb",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &SMTPSender{
		dialer:  gomail.NewDialer(host, port, username, password),
		from:    from,
		breaker: breaker,
	}
}

var _ portssvc.MailSender = (*SMTPSender)(nil)

// Send delivers one plain-text message through the relay.
func (s *SMTPSender) Send(to, subject, body string) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		m := gomail.NewMessage()
		m.SetHeader("From", s.from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", body)
		return nil, s.dialer.DialAndSend(m)
	})
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// NoopSender drops mail on the floor. Used when no relay is
// configured so password-reset requests still store their tokens.
type NoopSender struct{}

var _ portssvc.MailSender = (*NoopSender)(nil)

func (NoopSender) Send(to, subject, body string) error {
	slog.Warn("Mail relay not configured, dropping message",
		slog.String("to", to),
		slog.String("subject", subject))
	return nil
}
