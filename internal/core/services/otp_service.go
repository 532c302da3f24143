package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number (must be E.164)")
	ErrInvalidOTPCode     = errors.New("invalid or expired verification code")
)

var phoneRegex = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

const otpTTL = 5 * time.Minute

// CodeStore holds short-lived secrets (OTP codes, reset tokens) with a TTL.
// Expired or absent keys surface as domain.ErrKeyNotFound.
type CodeStore interface {
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// SMSSender is the outbound SMS capability used for OTP delivery.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// OTPService implements phone sign-in: a 6-digit code is generated, stored
// with a TTL and delivered out-of-band; confirming the code issues the same
// kind of session token an email login does.
type OTPService struct {
	codes  CodeStore
	sender SMSSender
	tokens *TokenService
}

func NewOTPService(codes CodeStore, sender SMSSender, tokens *TokenService) *OTPService {
	return &OTPService{
		codes:  codes,
		sender: sender,
		tokens: tokens,
	}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *OTPService) SendCode(ctx context.Context, phoneNumber string) error {
	if !phoneRegex.MatchString(phoneNumber) {
		return ErrInvalidPhoneNumber
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("otp service: code generation failed: %w", err)
	}

	if err := s.codes.Put(ctx, "otp:"+phoneNumber, code, otpTTL); err != nil {
		return fmt.Errorf("otp service: failed to store code: %w", err)
	}

	message := fmt.Sprintf("Your TimeWinder verification code is %s", code)
	if err := s.sender.Send(ctx, phoneNumber, message); err != nil {
		return fmt.Errorf("otp service: failed to send code: %w", err)
	}

	return nil
}

// ConfirmCode checks the submitted code against the stored one. A match
// consumes the code and returns a session token.
func (s *OTPService) ConfirmCode(ctx context.Context, phoneNumber, code string) (string, error) {
	stored, err := s.codes.Get(ctx, "otp:"+phoneNumber)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return "", ErrInvalidOTPCode
		}
		return "", fmt.Errorf("otp service: code lookup failed: %w", err)
	}

	if stored != code {
		return "", ErrInvalidOTPCode
	}

	if err := s.codes.Delete(ctx, "otp:"+phoneNumber); err != nil {
		return "", fmt.Errorf("otp service: failed to consume code: %w", err)
	}

	return s.tokens.GenerateToken("phone:" + phoneNumber)
}
