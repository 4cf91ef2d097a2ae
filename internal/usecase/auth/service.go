package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"career-compass/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered    = errors.New("email already registered")
	ErrUsernameAlreadyRegistered = errors.New("username already registered")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrInvalidInput              = errors.New("invalid input")
	ErrInvalidOTP                = errors.New("invalid or expired otp")
	ErrTooManyOTPAttempts        = errors.New("too many otp attempts")
	ErrInternal                  = errors.New("internal error")
)

const (
	otpLength      = 6
	otpValidity    = 10 * time.Minute
	otpMaxAttempts = 3
)

type RegisterInput struct {
	Email    string
	Username string
	FullName string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Sender delivers reset mail. Satisfied by pkg/mailer.Mailer.
type Sender interface {
	SendOTP(recipient, otp, fullName string) error
	SendPasswordResetConfirmation(recipient, fullName string) error
}

type Service struct {
	users  user.Repository
	mailer Sender
}

func NewService(users user.Repository, mailer Sender) *Service {
	return &Service{users: users, mailer: mailer}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)
	if email == "" || username == "" {
		return user.User{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return user.User{}, ErrInvalidInput
	}

	emailTaken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if emailTaken {
		return user.User{}, ErrEmailAlreadyRegistered
	}
	usernameTaken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if usernameTaken {
		return user.User{}, ErrUsernameAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.users.Create(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	created, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

// ForgotPassword stores a fresh OTP for the account and mails it. An unknown
// email returns nil so the endpoint never reveals whether an account exists.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil
		}
		return ErrInternal
	}

	code, err := generateOTP()
	if err != nil {
		return ErrInternal
	}
	otp := user.ResetOTP{
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(otpValidity),
	}
	if err := s.users.SetResetOTP(ctx, u.ID, otp); err != nil {
		return ErrInternal
	}

	if s.mailer != nil {
		if err := s.mailer.SendOTP(u.Email, code, u.FullName); err != nil {
			return ErrInternal
		}
	}
	return nil
}

// VerifyOTP checks the code without consuming it so clients can validate
// before showing the new-password form.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) error {
	_, err := s.checkOTP(ctx, email, code)
	return err
}

func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if !isValidPassword(newPassword) {
		return ErrInvalidInput
	}

	u, err := s.checkOTP(ctx, email, code)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}
	if err := s.users.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return ErrInternal
	}
	if err := s.users.ClearResetOTP(ctx, u.ID); err != nil {
		return ErrInternal
	}

	if s.mailer != nil {
		_ = s.mailer.SendPasswordResetConfirmation(u.Email, u.FullName)
	}
	return nil
}

func (s *Service) checkOTP(ctx context.Context, email, code string) (user.User, error) {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return user.User{}, ErrInvalidInput
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidOTP
		}
		return user.User{}, ErrInternal
	}

	otp, err := s.users.GetResetOTP(ctx, u.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if otp.Code == "" || time.Now().UTC().After(otp.ExpiresAt) {
		return user.User{}, ErrInvalidOTP
	}
	if otp.Attempts >= otpMaxAttempts {
		return user.User{}, ErrTooManyOTPAttempts
	}
	if otp.Code != code {
		_ = s.users.IncrementOTPAttempts(ctx, u.ID)
		return user.User{}, ErrInvalidOTP
	}

	return u, nil
}

func generateOTP() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpLength, n.Int64()), nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
