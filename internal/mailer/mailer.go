// Package mailer sends the admin notification for new repair-estimate
// submissions over authenticated SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"renovation_backend/internal/config"
	"renovation_backend/internal/model"
)

// SMTPSender abstracts smtp.SendMail so tests can capture the wire message
type SMTPSender interface {
	Send(from string, to []string, msg []byte) error
}

type smtpSender struct {
	cfg *config.SMTPConfig
}

func (s *smtpSender) Send(from string, to []string, msg []byte) error {
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	return smtp.SendMail(addr, auth, from, to, msg)
}

// Mailer sends multipart plain+HTML notifications to the admin recipient
type Mailer struct {
	cfg    *config.SMTPConfig
	sender SMTPSender
}

// New creates a Mailer backed by the given SMTP relay
func New(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, sender: &smtpSender{cfg: cfg}}
}

// NewWithSender creates a Mailer with a custom sender, used in tests
func NewWithSender(cfg *config.SMTPConfig, sender SMTPSender) *Mailer {
	return &Mailer{cfg: cfg, sender: sender}
}

// NotifyNewRequest sends the new-submission summary to the admin recipient.
// The send is synchronous; the caller decides what a failure means.
func (m *Mailer) NotifyNewRequest(ctx context.Context, req *model.Request) error {
	subject := fmt.Sprintf("New renovation request #%d from the Elite Renovation site", req.ID)
	msg := BuildMessage(m.cfg.User, m.cfg.AdminEmail, subject, textBody(req), htmlBody(req))
	if err := m.sender.Send(m.cfg.User, []string{m.cfg.AdminEmail}, msg); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}

// BuildMessage assembles a multipart/alternative MIME message
func BuildMessage(from, to, subject, textBody, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: multipart/alternative; boundary=\"boundary\"\r\n\r\n")
	b.WriteString("--boundary\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(textBody + "\r\n")
	b.WriteString("--boundary\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(htmlBody + "\r\n")
	b.WriteString("--boundary--\r\n")
	return []byte(b.String())
}

func textBody(req *model.Request) string {
	return fmt.Sprintf(`New apartment renovation request

Request number: #%d
Name: %s
Email: %s
Phone: %s
Area: %s
Finish type: %s
Estimated price: %s
Message: %s

Date: %s`,
		req.ID, req.FullName, req.Email, req.Phone,
		areaLine(req.Area), orDash(req.FinishType), priceLine(req.EstimatedPrice),
		messageLine(req.Message), time.Now().Format("02.01.2006 15:04"))
}

func htmlBody(req *model.Request) string {
	row := func(label, value string) string {
		return fmt.Sprintf(`<tr><td style="padding: 8px; border-bottom: 1px solid #eee;"><strong>%s</strong></td><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td></tr>`, label, value)
	}

	var b strings.Builder
	b.WriteString(`<html><body style="font-family: Arial, sans-serif; color: #333;">`)
	b.WriteString(`<h2 style="color: #D4AF37;">New apartment renovation request</h2>`)
	b.WriteString(`<table style="border-collapse: collapse; width: 100%; max-width: 600px;">`)
	b.WriteString(row("Request number:", fmt.Sprintf("#%d", req.ID)))
	b.WriteString(row("Name:", req.FullName))
	b.WriteString(row("Email:", req.Email))
	b.WriteString(row("Phone:", req.Phone))
	b.WriteString(row("Area:", areaLine(req.Area)))
	b.WriteString(row("Finish type:", orDash(req.FinishType)))
	b.WriteString(row("Estimated price:", priceLine(req.EstimatedPrice)))
	b.WriteString(row("Message:", messageLine(req.Message)))
	b.WriteString(row("Date:", time.Now().Format("02.01.2006 15:04")))
	b.WriteString(`</table></body></html>`)
	return b.String()
}

func areaLine(area *float64) string {
	if area == nil {
		return "not specified"
	}
	return fmt.Sprintf("%g m²", *area)
}

func priceLine(price *float64) string {
	if price == nil {
		return "not specified"
	}
	return fmt.Sprintf("%.0f ₽", *price)
}

func messageLine(msg *string) string {
	if msg == nil || *msg == "" {
		return "not specified"
	}
	return *msg
}

func orDash(s string) string {
	if s == "" {
		return "not specified"
	}
	return s
}
