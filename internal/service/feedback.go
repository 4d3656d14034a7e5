package service

import (
	"context"
	"time"

	"career-passport/internal/domain"
	"career-passport/internal/logger"
	"career-passport/internal/validation"

	"go.uber.org/zap"
)

// FeedbackService accepts the feedback and contact forms. Nothing is sent
// anywhere; submissions are logged.
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, form domain.FeedbackForm) error
	SubmitContact(ctx context.Context, form domain.ContactForm) error
}

type feedbackService struct {
	validator *validation.Validator
	delay     time.Duration
}

// NewFeedbackService returns a service that waits delay before accepting
// a feedback form.
func NewFeedbackService(validator *validation.Validator, delay time.Duration) FeedbackService {
	if validator == nil {
		validator = validation.New()
	}
	return &feedbackService{validator: validator, delay: delay}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, form domain.FeedbackForm) error {
	if err := s.validator.Validate(form); err != nil {
		return err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	logger.Get().Info("Feedback received",
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.Int("message_length", len(form.Message)))
	return nil
}

func (s *feedbackService) SubmitContact(ctx context.Context, form domain.ContactForm) error {
	if err := s.validator.Validate(form); err != nil {
		return err
	}
	logger.Get().Info("Contact form submitted",
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.String("subject", form.Subject),
		zap.String("message", form.Message))
	return nil
}
