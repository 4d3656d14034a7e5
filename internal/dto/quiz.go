package dto

import "career-passport/internal/domain"

// ErrorResponse is the body of every failed request and of CLI errors
// printed with --json.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Status  int               `json:"status,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// QuizResultResponse is a finished quiz.
type QuizResultResponse struct {
	Interest        string               `json:"interest"`
	Answers         []domain.Answer      `json:"answers"`
	Recommendations []domain.StreamScore `json:"recommendations"`
}

// NewQuizResultResponse keeps the top recommendations of scores.
func NewQuizResultResponse(interest string, answers []domain.Answer, scores []domain.StreamScore, top int) QuizResultResponse {
	if top > 0 && len(scores) > top {
		scores = scores[:top]
	}
	return QuizResultResponse{Interest: interest, Answers: answers, Recommendations: scores}
}
