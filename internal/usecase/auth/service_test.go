package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"career-compass/internal/domain/user"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
	otps  map[uuid.UUID]user.ResetOTP

	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users: make(map[uuid.UUID]user.User),
		otps:  make(map[uuid.UUID]user.ResetOTP),
	}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) SetResetOTP(_ context.Context, id uuid.UUID, otp user.ResetOTP) error {
	if _, ok := m.users[id]; !ok {
		return user.ErrNotFound
	}
	m.otps[id] = otp
	return nil
}

func (m *mockUserRepo) GetResetOTP(_ context.Context, id uuid.UUID) (user.ResetOTP, error) {
	if _, ok := m.users[id]; !ok {
		return user.ResetOTP{}, user.ErrNotFound
	}
	return m.otps[id], nil
}

func (m *mockUserRepo) IncrementOTPAttempts(_ context.Context, id uuid.UUID) error {
	otp := m.otps[id]
	otp.Attempts++
	m.otps[id] = otp
	return nil
}

func (m *mockUserRepo) ClearResetOTP(_ context.Context, id uuid.UUID) error {
	delete(m.otps, id)
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.PasswordHash = hash
	m.users[id] = u
	return nil
}

type mockSender struct {
	lastOTP       string
	lastRecipient string
	confirmations int
	err           error
}

func (m *mockSender) SendOTP(recipient, otp, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.lastRecipient = recipient
	m.lastOTP = otp
	return nil
}

func (m *mockSender) SendPasswordResetConfirmation(_, _ string) error {
	m.confirmations++
	return nil
}

func register(t *testing.T, svc *Service, email string) user.User {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    email,
		Username: "tester_" + uuid.NewString()[:8],
		FullName: "Test User",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return u
}

func TestRegister_NormalizesEmailAndHashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, &mockSender{})

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Alice@Example.COM ",
		Username: "alice",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked in returned user")
	}

	stored := repo.users[u.ID]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, &mockSender{})
	register(t, svc, "dup@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "dup@example.com",
		Username: "other",
		Password: "supersecret",
	})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(newMockUserRepo(), &mockSender{})
	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@b.com",
		Username: "shorty",
		Password: "short",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, &mockSender{})
	register(t, svc, "bob@example.com")

	_, err := svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "wrongpassword"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newMockUserRepo(), &mockSender{})
	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	sender := &mockSender{}
	svc := NewService(newMockUserRepo(), sender)

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("expected nil for unknown email, got %v", err)
	}
	if sender.lastOTP != "" {
		t.Fatalf("no OTP should be sent for unknown email")
	}
}

func TestPasswordResetFlow(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockSender{}
	svc := NewService(repo, sender)
	u := register(t, svc, "carol@example.com")

	if err := svc.ForgotPassword(context.Background(), "carol@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if len(sender.lastOTP) != otpLength {
		t.Fatalf("expected %d-digit OTP, got %q", otpLength, sender.lastOTP)
	}

	if err := svc.VerifyOTP(context.Background(), "carol@example.com", sender.lastOTP); err != nil {
		t.Fatalf("verify otp: %v", err)
	}

	if err := svc.ResetPassword(context.Background(), "carol@example.com", sender.lastOTP, "brandnewpass"); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if sender.confirmations != 1 {
		t.Fatalf("expected 1 confirmation mail, got %d", sender.confirmations)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "carol@example.com", Password: "brandnewpass"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	// The OTP is consumed by the reset.
	if err := svc.ResetPassword(context.Background(), "carol@example.com", sender.lastOTP, "anothernewpass"); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP after reset, got %v", err)
	}
	_ = u
}

func TestVerifyOTP_WrongCodeCountsAttempt(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockSender{}
	svc := NewService(repo, sender)
	u := register(t, svc, "dave@example.com")

	if err := svc.ForgotPassword(context.Background(), "dave@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}

	wrong := "000000"
	if wrong == sender.lastOTP {
		wrong = "000001"
	}

	for i := 0; i < otpMaxAttempts; i++ {
		if err := svc.VerifyOTP(context.Background(), "dave@example.com", wrong); !errors.Is(err, ErrInvalidOTP) {
			t.Fatalf("attempt %d: expected ErrInvalidOTP, got %v", i, err)
		}
	}

	// The correct code is rejected once the attempt budget is spent.
	if err := svc.VerifyOTP(context.Background(), "dave@example.com", sender.lastOTP); !errors.Is(err, ErrTooManyOTPAttempts) {
		t.Fatalf("expected ErrTooManyOTPAttempts, got %v", err)
	}
	_ = u
}

func TestVerifyOTP_Expired(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockSender{}
	svc := NewService(repo, sender)
	u := register(t, svc, "erin@example.com")

	if err := svc.ForgotPassword(context.Background(), "erin@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}

	otp := repo.otps[u.ID]
	otp.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	repo.otps[u.ID] = otp

	if err := svc.VerifyOTP(context.Background(), "erin@example.com", sender.lastOTP); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP for expired code, got %v", err)
	}
}
