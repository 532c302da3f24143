package services

import (
	"context"
	"log"
	"strings"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

// FallbackMessage is returned whenever the generator is unavailable, so the
// feature degrades gracefully instead of failing visibly.
const FallbackMessage = "Keep going! Every step brings you closer to your goal."

type MotivationService struct {
	generator domain.MessageGenerator
}

func NewMotivationService(generator domain.MessageGenerator) *MotivationService {
	return &MotivationService{generator: generator}
}

// Generate asks the generator for a motivational message. Any failure,
// including a blank result, falls open to FallbackMessage.
func (s *MotivationService) Generate(ctx context.Context, goalDescription string) string {
	if s.generator == nil {
		return FallbackMessage
	}

	message, err := s.generator.Generate(ctx, goalDescription)
	if err != nil {
		log.Printf("Message generation failed, using fallback: %v", err)
		return FallbackMessage
	}

	if strings.TrimSpace(message) == "" {
		return FallbackMessage
	}
	return message
}
