package notify

import (
	"context"
	"log"
)

// LogMailer and LogSMSSender are the local stand-ins for the external
// delivery providers. They write the payload to the process log, which is
// enough for development and for exercising the auth flows end to end.

type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	log.Printf("[mail] password reset for %s: token %s", email, token)
	return nil
}

type LogSMSSender struct{}

func NewLogSMSSender() *LogSMSSender {
	return &LogSMSSender{}
}

func (s *LogSMSSender) Send(ctx context.Context, phoneNumber, message string) error {
	log.Printf("[sms] to %s: %s", phoneNumber, message)
	return nil
}
