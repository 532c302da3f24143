package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

const resetTokenTTL = 30 * time.Minute

// Mailer is the outbound mail capability. Delivery policy (retries,
// timeouts) belongs to the implementation, not to this service.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

type AuthService struct {
	repo   domain.UserRepository
	tokens *TokenService
	codes  CodeStore
	mailer Mailer
}

func NewAuthService(repo domain.UserRepository, tokens *TokenService, codes CodeStore, mailer Mailer) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		codes:  codes,
		mailer: mailer,
	}
}

type RegisterInput struct {
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	user, err := domain.NewUser(uuid.NewString(), input.Email)
	if err != nil {
		return nil, err
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a session token. Unknown emails
// and wrong passwords both map to ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: login failed: %w", err)
	}

	if err := user.CheckPassword(password); err != nil {
		return "", err
	}

	return s.tokens.GenerateToken(user.ID)
}

// SendPasswordReset issues a one-shot reset token and hands it to the
// mailer. An unknown email is silently accepted so the endpoint does not
// leak which addresses have accounts.
func (s *AuthService) SendPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("auth service: reset lookup failed: %w", err)
	}

	token := uuid.NewString()
	if err := s.codes.Put(ctx, "reset:"+user.ID, token, resetTokenTTL); err != nil {
		return fmt.Errorf("auth service: failed to store reset token: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		return fmt.Errorf("auth service: failed to send reset mail: %w", err)
	}

	return nil
}
