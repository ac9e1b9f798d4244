package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

const (
	smtpGmailHost = "smtp.gmail.com"
	smtpGmailPort = 587

	senderEmailName = "Mazra Market"
)

// GmailSender delivers the email copy of admin escalations over Gmail SMTP.
type GmailSender struct {
	client      *mail.Client
	fromAddress string
}

func NewGmailSender(username, password string) (*GmailSender, error) {
	client, err := mail.NewClient(smtpGmailHost, mail.WithPort(smtpGmailPort), mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username), mail.WithPassword(password))
	if err != nil {
		return nil, err
	}
	if err = client.DialWithContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	return &GmailSender{
		client:      client,
		fromAddress: username,
	}, nil
}

// SendOrderAlert sends a plain-text alert about one order.
func (sender *GmailSender) SendOrderAlert(to, subject, body string) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(senderEmailName, sender.fromAddress); err != nil {
		return fmt.Errorf("failed to set From address: %w", err)
	}

	msg.Subject(subject)

	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set To address: %w", err)
	}

	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := sender.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
