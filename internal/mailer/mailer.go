// Package mailer sends the storefront's transactional emails (welcome on
// registration, password reset links). Handlers depend on the Mailer
// interface; the SMTP implementation is used in production and the log
// implementation in development, where no relay is configured.
package mailer

import (
	"fmt"
	"net/smtp"

	log "github.com/sirupsen/logrus"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer delivers mail through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: auth,
		from: from,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		m.from, to, subject, htmlBody)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// LogMailer records outgoing mail in the logs instead of delivering it.
type LogMailer struct{}

func (LogMailer) Send(to, subject, htmlBody string) error {
	log.WithFields(log.Fields{
		"to":      to,
		"subject": subject,
	}).Info("Mail delivery skipped (log mailer)")
	return nil
}

// WelcomeBody renders the registration welcome email.
func WelcomeBody(name string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px;">
  <h2 style="color: #FF5E00;">Welcome to Dodo Pizza!</h2>
  <p>Hi <strong>%s</strong>,</p>
  <p>We're excited to have you on board. You've successfully created an account with us!</p>
  <p>Start exploring our range of pizzas and enjoy a seamless ordering experience.</p>
  <p style="margin-top: 30px; font-size: 14px; color: #777;">If you did not sign up for this account, please ignore this email.</p>
</div>`, name)
}

// ResetBody renders the password reset email with its one-time link.
func ResetBody(resetLink string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px;">
  <h2 style="color: #FF5E00;">Reset your password</h2>
  <p>Follow the link below to choose a new password. The link expires in one hour.</p>
  <p><a href="%s">%s</a></p>
  <p style="margin-top: 30px; font-size: 14px; color: #777;">If you did not request this, please ignore this email.</p>
</div>`, resetLink, resetLink)
}
