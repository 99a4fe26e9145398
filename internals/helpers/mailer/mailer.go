// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"fmt"
	"net/smtp"

	"scholax_backend/internals/configs"
)

// Sender is the narrow OTP delivery contract the auth service depends on.
type Sender interface {
	Send(to, code string) error
}

// SMTPSender delivers OTP codes through a plain-auth SMTP relay.
type SMTPSender struct {
	cfg configs.SMTPConfig
}

func NewSMTPSender(cfg configs.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, code string) error {
	msg := "From: " + s.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: ScholaX - Your OTP Code\r\n" +
		"\r\n" +
		"Your ScholaX login code is " + code + ".\r\n" +
		"It expires in 10 minutes. Never share this code with anyone.\r\n"

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}
