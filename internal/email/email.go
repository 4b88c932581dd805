package email

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/Vizzilnt/Protracker1/internal/logger"
)

// Sender delivers a one-time code to a recipient. Implementations report
// plain success or failure; callers decide what to do about failures.
type Sender interface {
	SendOTP(recipient, code string) error
}

// SMTPSender relays through a plain SMTP endpoint.
type SMTPSender struct {
	Host     string
	Port     int
	From     string
	Password string
}

func (s SMTPSender) SendOTP(recipient, code string) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	msg := []byte("From: " + s.From + "\r\n" +
		"To: " + recipient + "\r\n" +
		"Subject: Reset Your Password\r\n" +
		"\r\n" +
		"Your ProTracker one-time code is " + code + "\r\n")

	var a smtp.Auth
	if s.Password != "" {
		a = smtp.PlainAuth("", s.From, s.Password, s.Host)
	}
	if err := smtp.SendMail(addr, a, s.From, []string{recipient}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", recipient, err)
	}
	return nil
}

// LogSender records the code instead of delivering it, for runs without a
// configured mail relay.
type LogSender struct{}

func (LogSender) SendOTP(recipient, code string) error {
	logger.Info("simulated OTP delivery",
		zap.String("recipient", recipient),
		zap.String("code", code),
	)
	return nil
}
