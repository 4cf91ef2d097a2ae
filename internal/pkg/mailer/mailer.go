package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"career-compass/internal/config"
)

// Mailer sends transactional mail for the password-reset flow. Without
// sender credentials it runs in dev mode and logs instead of sending.
type Mailer struct {
	cfg    config.SMTPConfig
	logger *log.Logger

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func New(cfg config.SMTPConfig, logger *log.Logger) *Mailer {
	if logger == nil {
		logger = log.Default()
	}
	return &Mailer{cfg: cfg, logger: logger, send: smtp.SendMail}
}

func (m *Mailer) devMode() bool {
	return m.cfg.SenderEmail == "" || m.cfg.SenderPassword == ""
}

// SendOTP mails a password-reset code valid for ten minutes.
func (m *Mailer) SendOTP(recipient, otp, fullName string) error {
	if fullName == "" {
		fullName = "User"
	}
	if m.devMode() {
		m.logger.Printf("[Mailer] dev mode | otp for %s: %s", recipient, otp)
		return nil
	}

	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nYou requested to reset your password. Use the following OTP to proceed:\r\n\r\nOTP: %s\r\n\r\nThis OTP is valid for 10 minutes.\r\n\r\nIf you didn't request this, please ignore this email.\r\n",
		fullName, otp,
	)
	return m.sendMail(recipient, "Password Reset OTP - Career Compass", body)
}

// SendPasswordResetConfirmation mails a notice that the password changed.
func (m *Mailer) SendPasswordResetConfirmation(recipient, fullName string) error {
	if fullName == "" {
		fullName = "User"
	}
	if m.devMode() {
		m.logger.Printf("[Mailer] dev mode | password reset confirmation to %s", recipient)
		return nil
	}

	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nYour password has been successfully changed. If you didn't make this change, please contact support immediately.\r\n",
		fullName,
	)
	return m.sendMail(recipient, "Password Changed Successfully - Career Compass", body)
}

func (m *Mailer) sendMail(recipient, subject, body string) error {
	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.SenderEmail, m.cfg.SenderPassword, m.cfg.Host)

	var msg strings.Builder
	msg.WriteString("From: " + m.cfg.SenderEmail + "\r\n")
	msg.WriteString("To: " + recipient + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	if err := m.send(addr, auth, m.cfg.SenderEmail, []string{recipient}, []byte(msg.String())); err != nil {
		m.logger.Printf("[Mailer] send failed | to=%s err=%v", recipient, err)
		return err
	}
	return nil
}
