package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"jobboard/internal/config"
)

// SMTPEmailService sends plain-text notifications through a configured SMTP
// relay. Delivery is best-effort; callers decide whether a failure matters.
type SMTPEmailService struct {
	cfg config.SMTPConfig
}

func NewSMTPEmailService(cfg config.SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{cfg: cfg}
}

func (s *SMTPEmailService) SendActivation(ctx context.Context, to, username, link string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nPlease click on the link below to activate your account:\n%s\n\nThank you for registering.",
		username, link,
	)
	return s.send(ctx, to, "Please activate your account", body)
}

func (s *SMTPEmailService) SendApplicationReceived(ctx context.Context, to, listingTitle string) error {
	body := fmt.Sprintf("Thank you for applying to %s. We will review your application soon.", listingTitle)
	return s.send(ctx, to, fmt.Sprintf("Application submitted for %s", listingTitle), body)
}

func (s *SMTPEmailService) SendNewApplicant(ctx context.Context, to, candidateName, listingTitle string) error {
	body := fmt.Sprintf("%s has applied for %s.", candidateName, listingTitle)
	return s.send(ctx, to, fmt.Sprintf("New application for %s", listingTitle), body)
}

func (s *SMTPEmailService) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}

// LogEmailService stands in when no SMTP relay is configured: every send is
// logged and reported successful. Useful for dev and tests.
type LogEmailService struct{}

func NewLogEmailService() *LogEmailService { return &LogEmailService{} }

func (l *LogEmailService) SendActivation(ctx context.Context, to, username, link string) error {
	slog.Info("email (log sink): activation", "to", to, "link", link)
	return nil
}

func (l *LogEmailService) SendApplicationReceived(ctx context.Context, to, listingTitle string) error {
	slog.Info("email (log sink): application received", "to", to, "listing", listingTitle)
	return nil
}

func (l *LogEmailService) SendNewApplicant(ctx context.Context, to, candidateName, listingTitle string) error {
	slog.Info("email (log sink): new applicant", "to", to, "candidate", candidateName, "listing", listingTitle)
	return nil
}
