package service

import (
	"context"

	"career-passport/internal/domain"
	"career-passport/internal/logger"
	"career-passport/internal/quiz"

	"go.uber.org/zap"
)

// QuizContent is the content a quiz needs.
type QuizContent interface {
	Interests(ctx context.Context) ([]domain.Interest, error)
	QuizBank(ctx context.Context) (domain.QuizBank, error)
}

// QuizService lists quiz topics and starts quiz sessions.
type QuizService interface {
	ListInterests(ctx context.Context) ([]domain.Interest, error)
	// StartQuiz returns a session already begun on interestID.
	StartQuiz(ctx context.Context, interestID string) (*quiz.Session, error)
	// Evaluate scores a complete answer sheet for interestID without a
	// session, one option index per question.
	Evaluate(ctx context.Context, interestID string, choices []int) ([]domain.StreamScore, error)
}

type quizService struct {
	content QuizContent
}

func NewQuizService(content QuizContent) QuizService {
	return &quizService{content: content}
}

func (s *quizService) ListInterests(ctx context.Context) ([]domain.Interest, error) {
	return s.content.Interests(ctx)
}

func (s *quizService) quizFor(ctx context.Context, interestID string) (domain.QuizData, error) {
	bank, err := s.content.QuizBank(ctx)
	if err != nil {
		return domain.QuizData{}, err
	}
	data, ok := bank[interestID]
	if !ok {
		logger.Get().Warn("No quiz for interest", zap.String("interest", interestID))
		return domain.QuizData{}, domain.NewUnknownInterestError(interestID)
	}
	return data, nil
}

func (s *quizService) StartQuiz(ctx context.Context, interestID string) (*quiz.Session, error) {
	data, err := s.quizFor(ctx, interestID)
	if err != nil {
		return nil, err
	}
	session := quiz.NewSession()
	if err := session.Begin(interestID, data); err != nil {
		return nil, err
	}
	logger.Get().Debug("Quiz started",
		zap.String("interest", interestID),
		zap.Int("questions", session.Total()),
		zap.Int("streams", data.Streams.Len()))
	return session, nil
}

func (s *quizService) Evaluate(ctx context.Context, interestID string, choices []int) ([]domain.StreamScore, error) {
	session, err := s.StartQuiz(ctx, interestID)
	if err != nil {
		return nil, err
	}
	if len(choices) != session.Total() {
		return nil, domain.NewInvalidInputError("expected one answer per question")
	}
	for _, c := range choices {
		if err := session.Select(c); err != nil {
			return nil, err
		}
		if err := session.Next(); err != nil {
			return nil, err
		}
	}
	return session.Results()
}
