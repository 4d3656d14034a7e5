package quiz

import (
	"fmt"

	"career-passport/internal/domain"
)

// State is the phase of a Session.
type State int

const (
	StateSelectingTopic State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateSelectingTopic:
		return "selecting-topic"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session walks a single quiz forward one question at a time. It is not
// safe for concurrent use.
type Session struct {
	state   State
	topic   string
	data    domain.QuizData
	index   int
	pending *domain.QuizOption
	answers []domain.Answer
	results []domain.StreamScore
}

// NewSession returns a session waiting for a topic.
func NewSession() *Session {
	return &Session{}
}

func (s *Session) State() State  { return s.state }
func (s *Session) Topic() string { return s.topic }
func (s *Session) Index() int    { return s.index }
func (s *Session) Total() int    { return len(s.data.Questions) }
func (s *Session) IsLast() bool  { return s.index == len(s.data.Questions)-1 }
func (s *Session) HasPrev() bool { return s.state == StateInProgress && s.index > 0 }

// Begin starts the quiz for topic at its first question.
func (s *Session) Begin(topic string, data domain.QuizData) error {
	if s.state != StateSelectingTopic {
		return domain.NewInvalidQuizStateError(fmt.Sprintf("cannot begin a quiz while %s", s.state))
	}
	if len(data.Questions) == 0 {
		return domain.NewInvalidQuizStateError(fmt.Sprintf("quiz %q has no questions", topic))
	}
	s.topic = topic
	s.data = data
	s.index = 0
	s.pending = nil
	s.answers = make([]domain.Answer, 0, len(data.Questions))
	s.results = nil
	s.state = StateInProgress
	return nil
}

// Current returns the question being answered.
func (s *Session) Current() (domain.QuizQuestion, error) {
	if s.state != StateInProgress {
		return domain.QuizQuestion{}, domain.NewInvalidQuizStateError("no question in progress")
	}
	return s.data.Questions[s.index], nil
}

// Select marks option i of the current question as the pending choice.
// Selecting again replaces it.
func (s *Session) Select(i int) error {
	q, err := s.Current()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(q.Options) {
		return domain.NewInvalidInputError(fmt.Sprintf("option %d out of range for question %d", i+1, q.ID))
	}
	opt := q.Options[i]
	s.pending = &opt
	return nil
}

// Pending returns the selected but not yet submitted option.
func (s *Session) Pending() (domain.QuizOption, bool) {
	if s.pending == nil {
		return domain.QuizOption{}, false
	}
	return *s.pending, true
}

// Next records the pending option and moves to the following question,
// or scores the quiz when the current question is the last one.
func (s *Session) Next() error {
	q, err := s.Current()
	if err != nil {
		return err
	}
	if s.pending == nil {
		return domain.NewInvalidQuizStateError("select an option before continuing")
	}
	s.answers = append(s.answers, domain.Answer{QuestionID: q.ID, SelectedOption: *s.pending})
	s.pending = nil

	if s.IsLast() {
		s.results = Recommend(s.answers, s.data.Streams)
		s.state = StateCompleted
		return nil
	}
	s.index++
	return nil
}

// Previous steps back one question and drops its recorded answer.
func (s *Session) Previous() error {
	if !s.HasPrev() {
		return domain.NewInvalidQuizStateError("already at the first question")
	}
	s.answers = s.answers[:len(s.answers)-1]
	s.index--
	s.pending = nil
	return nil
}

// Reset discards everything and waits for a new topic.
func (s *Session) Reset() {
	*s = Session{}
}

// Answers returns a copy of the recorded answers in order.
func (s *Session) Answers() []domain.Answer {
	out := make([]domain.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Results returns the recommendations once the quiz is completed.
func (s *Session) Results() ([]domain.StreamScore, error) {
	if s.state != StateCompleted {
		return nil, domain.NewInvalidQuizStateError("quiz is not completed")
	}
	return s.results, nil
}

// Progress is the completion percentage shown in the progress bar. A
// pending selection counts toward the current question.
func (s *Session) Progress() float64 {
	switch s.state {
	case StateCompleted:
		return 100
	case StateInProgress:
		done := s.index
		if s.pending != nil {
			done++
		}
		return float64(done) / float64(len(s.data.Questions)) * 100
	default:
		return 0
	}
}
