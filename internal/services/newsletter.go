package services

import (
	"context"

	"go.uber.org/zap"
)

// NewsletterSubscriber signs an email address up for the newsletter
type NewsletterSubscriber interface {
	Subscribe(ctx context.Context, email string) error
}

// NoopSubscriber accepts every address and does nothing with it.
// It stands in until a subscription service is available.
type NoopSubscriber struct {
	logger *zap.Logger
}

func NewNoopSubscriber(logger *zap.Logger) *NoopSubscriber {
	return &NoopSubscriber{logger: logger}
}

func (s *NoopSubscriber) Subscribe(ctx context.Context, email string) error {
	s.logger.Debug("newsletter subscription ignored", zap.Bool("has_email", email != ""))
	return nil
}
