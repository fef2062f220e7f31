// Package notifier composes and sends the support-mailbox email for a newly
// submitted complaint. The submitter is copied on every message.
package notifier

import (
	"fmt"
	"net/smtp"
	"strings"

	"complaintgo/backend/internal/config"
	"complaintgo/backend/internal/models"
)

// Notifier delivers a notification for a persisted complaint.
type Notifier interface {
	Notify(complaint *models.Complaint) error
}

// Mailer sends complaint notifications over SMTP with STARTTLS.
type Mailer struct {
	cfg  config.MailConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer creates a Mailer from the startup mail configuration.
func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

// Notify sends the complaint notification to the support address with the
// submitter in Cc. A transport failure is returned with its cause; there is
// no retry.
func (m *Mailer) Notify(complaint *models.Complaint) error {
	auth := smtp.PlainAuth("", m.cfg.Sender, m.cfg.Password, m.cfg.SMTPHost)
	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	recipients := []string{m.cfg.SupportEmail, complaint.Email}

	msg := ComposeMessage(m.cfg.Sender, m.cfg.SupportEmail, complaint)
	if err := m.send(addr, auth, m.cfg.Sender, recipients, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", m.cfg.SupportEmail, err)
	}
	return nil
}

// Subject builds the fixed-template subject line for a complaint.
func Subject(complaint *models.Complaint) string {
	return fmt.Sprintf("New Consumer Complaint from %s", complaint.Name)
}

// ComposeMessage renders the full RFC 822 message: headers plus the
// plain-text body. The body carries the summarized issue, not the raw one,
// so outgoing notifications stay short.
func ComposeMessage(from, to string, complaint *models.Complaint) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Cc: %s\r\n", complaint.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", Subject(complaint))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")

	b.WriteString("Dear Support Team,\r\n\r\n")
	b.WriteString("A consumer has submitted a complaint. Below are the details:\r\n\r\n")
	fmt.Fprintf(&b, "Name: %s\r\n", complaint.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", complaint.Email)
	fmt.Fprintf(&b, "Phone: %s\r\n", complaint.Phone)
	fmt.Fprintf(&b, "Product: %s\r\n", complaint.Product)
	b.WriteString("\r\nIssue Description (Summary):\r\n")
	b.WriteString(complaint.SummarizedIssue)
	b.WriteString("\r\n\r\nPlease address this issue promptly.\r\n\r\n")
	b.WriteString("Regards,\r\nAutomated Complaint System\r\n")

	return []byte(b.String())
}
