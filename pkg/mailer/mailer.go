package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/logger"
)

const (
	TemplatePasswordResetOTP = "password_reset_otp"
	TemplatePasswordChanged  = "password_changed"
)

// Mailer is the injected notification collaborator. Delivery failures are
// the caller's to log; they never roll back the state change that
// triggered the mail.
type Mailer interface {
	Send(template, recipient string, data map[string]any) error
}

type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, Username: username, Password: password, From: from}
}

func (m *SMTPMailer) Send(template, recipient string, data map[string]any) error {
	subject, body, err := render(template, data)
	if err != nil {
		return err
	}
	msg := "From: " + m.From + "\r\n" +
		"To: " + recipient + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" + body
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{recipient}, []byte(msg))
}

func render(template string, data map[string]any) (subject, body string, err error) {
	switch template {
	case TemplatePasswordResetOTP:
		return "DineEase password reset",
			fmt.Sprintf("Your one-time password is %v. Use it to reset your DineEase password.", data["otp"]),
			nil
	case TemplatePasswordChanged:
		return "DineEase password changed",
			"Your DineEase password was changed. If this was not you, contact support immediately.",
			nil
	}
	return "", "", fmt.Errorf("unknown mail template: %s", template)
}

// LogMailer stands in when SMTP is not configured (and in tests).
type LogMailer struct{}

func (LogMailer) Send(template, recipient string, data map[string]any) error {
	logger.L().Info("mail (not sent, SMTP unconfigured)",
		zap.String("template", template),
		zap.String("recipient", recipient),
		zap.Any("data", data),
	)
	return nil
}
