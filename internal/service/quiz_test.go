package service

import (
	"context"
	"errors"
	"testing"

	"career-passport/internal/domain"
	"career-passport/internal/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testBank() domain.QuizBank {
	return domain.QuizBank{
		"technology": {
			Questions: []domain.QuizQuestion{
				{ID: 1, Question: "Weekend plan?", Options: []domain.QuizOption{
					{Text: "Build a robot", Weight: domain.WeightMap{"engineering": 3}},
					{Text: "Volunteer at a clinic", Weight: domain.WeightMap{"medicine": 3}},
				}},
				{ID: 2, Question: "Favourite class?", Options: []domain.QuizOption{
					{Text: "Maths", Weight: domain.WeightMap{"engineering": 2, "commerce": 1}},
					{Text: "Biology", Weight: domain.WeightMap{"medicine": 2, "astrology": 9}},
				}},
			},
			Streams: domain.NewStreamSet(
				domain.StreamEntry{ID: "engineering", Stream: domain.Stream{Name: "Engineering"}},
				domain.StreamEntry{ID: "medicine", Stream: domain.Stream{Name: "Medicine"}},
				domain.StreamEntry{ID: "commerce", Stream: domain.Stream{Name: "Commerce"}},
			),
		},
	}
}

func TestQuizService_StartQuiz(t *testing.T) {
	content := new(MockQuizContent)
	content.On("QuizBank", mock.Anything).Return(testBank(), nil)
	svc := NewQuizService(content)

	session, err := svc.StartQuiz(context.Background(), "technology")

	require.NoError(t, err)
	assert.Equal(t, quiz.StateInProgress, session.State())
	assert.Equal(t, "technology", session.Topic())
	assert.Equal(t, 2, session.Total())
	content.AssertExpectations(t)
}

func TestQuizService_UnknownInterest(t *testing.T) {
	content := new(MockQuizContent)
	content.On("QuizBank", mock.Anything).Return(testBank(), nil)
	svc := NewQuizService(content)

	_, err := svc.StartQuiz(context.Background(), "astronomy")

	assert.Equal(t, domain.ErrUnknownInterest, domain.CodeOf(err))
}

func TestQuizService_ContentFailure(t *testing.T) {
	content := new(MockQuizContent)
	cause := domain.NewContentUnavailableError(domain.ResourceQuizQuestions, errors.New("offline"))
	content.On("QuizBank", mock.Anything).Return(nil, cause)
	svc := NewQuizService(content)

	_, err := svc.StartQuiz(context.Background(), "technology")

	assert.Equal(t, domain.ErrContentUnavailable, domain.CodeOf(err))
}

func TestQuizService_Evaluate(t *testing.T) {
	content := new(MockQuizContent)
	content.On("QuizBank", mock.Anything).Return(testBank(), nil)
	svc := NewQuizService(content)

	results, err := svc.Evaluate(context.Background(), "technology", []int{0, 1})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "engineering", results[0].StreamID)
	assert.Equal(t, 3, results[0].Score)
	assert.Equal(t, 100, results[0].Percentage)
	assert.Equal(t, "medicine", results[1].StreamID)
	assert.Equal(t, 2, results[1].Score)
	assert.Equal(t, 67, results[1].Percentage)
	assert.Equal(t, "commerce", results[2].StreamID)
	assert.Equal(t, 0, results[2].Score)
}

func TestQuizService_EvaluateWrongAnswerCount(t *testing.T) {
	content := new(MockQuizContent)
	content.On("QuizBank", mock.Anything).Return(testBank(), nil)
	svc := NewQuizService(content)

	_, err := svc.Evaluate(context.Background(), "technology", []int{0})
	assert.Equal(t, domain.ErrInvalidInput, domain.CodeOf(err))

	_, err = svc.Evaluate(context.Background(), "technology", []int{0, 5})
	assert.Equal(t, domain.ErrInvalidInput, domain.CodeOf(err))
}

func TestQuizService_ListInterests(t *testing.T) {
	content := new(MockQuizContent)
	interests := []domain.Interest{{ID: "technology", Name: "Technology"}}
	content.On("Interests", mock.Anything).Return(interests, nil).Once()
	svc := NewQuizService(content)

	got, err := svc.ListInterests(context.Background())

	require.NoError(t, err)
	assert.Equal(t, interests, got)
	content.AssertExpectations(t)
}
