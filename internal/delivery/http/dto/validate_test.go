package dto

import "testing"

func TestValidate_RegisterRequest(t *testing.T) {
	ok := RegisterRequest{
		Email:    "a@example.com",
		Username: "alice",
		Password: "supersecret",
	}
	if fields := Validate(ok); fields != nil {
		t.Fatalf("expected valid request, got %v", fields)
	}

	bad := RegisterRequest{Email: "not-an-email", Username: "ab", Password: "short"}
	fields := Validate(bad)
	if fields == nil {
		t.Fatalf("expected validation failures")
	}
	for _, f := range []string{"email", "username", "password"} {
		if _, ok := fields[f]; !ok {
			t.Fatalf("expected failure for %q, got %v", f, fields)
		}
	}
}

func TestValidate_PortfolioTheme(t *testing.T) {
	if fields := Validate(GeneratePortfolioRequest{Theme: "startup"}); fields != nil {
		t.Fatalf("expected valid theme, got %v", fields)
	}
	if fields := Validate(GeneratePortfolioRequest{Theme: "vaporwave"}); fields == nil {
		t.Fatalf("expected theme validation failure")
	}
	// Empty theme falls back server-side.
	if fields := Validate(GeneratePortfolioRequest{}); fields != nil {
		t.Fatalf("empty theme should be allowed, got %v", fields)
	}
}

func TestValidate_OTPLength(t *testing.T) {
	if fields := Validate(VerifyOTPRequest{Email: "a@example.com", OTP: "123456"}); fields != nil {
		t.Fatalf("expected valid otp, got %v", fields)
	}
	if fields := Validate(VerifyOTPRequest{Email: "a@example.com", OTP: "123"}); fields == nil {
		t.Fatalf("expected otp length failure")
	}
}
