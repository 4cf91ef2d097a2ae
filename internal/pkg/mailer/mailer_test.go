package mailer

import (
	"log"
	"net/smtp"
	"strings"
	"testing"

	"career-compass/internal/config"
)

func TestSendOTP_DevModeSkipsSMTP(t *testing.T) {
	m := New(config.SMTPConfig{Host: "smtp.example.com", Port: "587"}, log.New(&strings.Builder{}, "", 0))

	called := false
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	if err := m.SendOTP("someone@example.com", "123456", "Someone"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if called {
		t.Fatalf("dev mode must not hit SMTP")
	}
}

func TestSendOTP_BuildsMessage(t *testing.T) {
	m := New(config.SMTPConfig{
		Host:           "smtp.example.com",
		Port:           "587",
		SenderEmail:    "noreply@example.com",
		SenderPassword: "secret",
	}, log.New(&strings.Builder{}, "", 0))

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := m.SendOTP("alice@example.com", "654321", "Alice"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Fatalf("unexpected addr %q", gotAddr)
	}
	if gotFrom != "noreply@example.com" {
		t.Fatalf("unexpected from %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "alice@example.com" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}

	msg := string(gotMsg)
	for _, want := range []string{"Subject: Password Reset OTP", "Hello Alice", "OTP: 654321"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSendPasswordResetConfirmation_DefaultsName(t *testing.T) {
	m := New(config.SMTPConfig{
		Host:           "smtp.example.com",
		Port:           "587",
		SenderEmail:    "noreply@example.com",
		SenderPassword: "secret",
	}, log.New(&strings.Builder{}, "", 0))

	var gotMsg []byte
	m.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		gotMsg = msg
		return nil
	}

	if err := m.SendPasswordResetConfirmation("bob@example.com", ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(string(gotMsg), "Hello User") {
		t.Fatalf("expected fallback name in message")
	}
}
