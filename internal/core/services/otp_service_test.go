package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewinder-app/timewinder/internal/core/services"
)

type mockSMSSender struct {
	messages []string
}

func (m *mockSMSSender) Send(ctx context.Context, phoneNumber, message string) error {
	m.messages = append(m.messages, message)
	return nil
}

func TestOTPService(t *testing.T) {
	ctx := context.Background()
	tokens := services.NewTokenService("test-secret", "timewinder", time.Hour)

	t.Run("Send stores a 6-digit code and delivers it", func(t *testing.T) {
		codes := newMockCodeStore()
		sender := &mockSMSSender{}
		svc := services.NewOTPService(codes, sender, tokens)

		require.NoError(t, svc.SendCode(ctx, "+15551234567"))

		code := codes.codes["otp:+15551234567"]
		assert.Len(t, code, 6)
		require.Len(t, sender.messages, 1)
		assert.Contains(t, sender.messages[0], code)
	})

	t.Run("Error: phone number not E.164", func(t *testing.T) {
		svc := services.NewOTPService(newMockCodeStore(), &mockSMSSender{}, tokens)

		assert.ErrorIs(t, svc.SendCode(ctx, "555-1234"), services.ErrInvalidPhoneNumber)
	})

	t.Run("Confirm consumes the code and issues a session token", func(t *testing.T) {
		codes := newMockCodeStore()
		svc := services.NewOTPService(codes, &mockSMSSender{}, tokens)

		require.NoError(t, svc.SendCode(ctx, "+15551234567"))
		code := codes.codes["otp:+15551234567"]

		token, err := svc.ConfirmCode(ctx, "+15551234567", code)
		require.NoError(t, err)

		subject, err := tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "phone:+15551234567", subject)

		// The code is one-shot.
		_, err = svc.ConfirmCode(ctx, "+15551234567", code)
		assert.ErrorIs(t, err, services.ErrInvalidOTPCode)
	})

	t.Run("Error: wrong or missing code", func(t *testing.T) {
		codes := newMockCodeStore()
		svc := services.NewOTPService(codes, &mockSMSSender{}, tokens)

		_, err := svc.ConfirmCode(ctx, "+15551234567", "000000")
		assert.ErrorIs(t, err, services.ErrInvalidOTPCode)

		require.NoError(t, svc.SendCode(ctx, "+15551234567"))
		_, err = svc.ConfirmCode(ctx, "+15551234567", "badcod")
		assert.ErrorIs(t, err, services.ErrInvalidOTPCode)
	})
}
