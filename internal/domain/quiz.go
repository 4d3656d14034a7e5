package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// WeightMap maps a stream ID to the points an option contributes to it.
type WeightMap map[string]int

// QuizOption is one selectable answer of a question.
type QuizOption struct {
	Text   string    `json:"text"`
	Weight WeightMap `json:"weight"`
}

// QuizQuestion represents a quiz question in the domain
type QuizQuestion struct {
	ID       int          `json:"id"`
	Question string       `json:"question"`
	Options  []QuizOption `json:"options"`
}

// Stream is an academic or career stream a quiz can recommend.
type Stream struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Careers     []string `json:"careers"`
	Education   []string `json:"education"`
	Skills      []string `json:"skills"`
}

// StreamSet is the fixed, ordered set of streams known to a quiz. Order is
// the declaration order of the JSON object it was decoded from.
type StreamSet struct {
	ids     []string
	streams map[string]Stream
}

// StreamEntry pairs an ID with its stream for NewStreamSet.
type StreamEntry struct {
	ID     string
	Stream Stream
}

// NewStreamSet builds a set in the order given. Later duplicates replace
// the stream but keep the first position.
func NewStreamSet(entries ...StreamEntry) StreamSet {
	s := StreamSet{streams: make(map[string]Stream, len(entries))}
	for _, e := range entries {
		s.put(e.ID, e.Stream)
	}
	return s
}

func (s *StreamSet) put(id string, stream Stream) {
	if s.streams == nil {
		s.streams = make(map[string]Stream)
	}
	if _, exists := s.streams[id]; !exists {
		s.ids = append(s.ids, id)
	}
	s.streams[id] = stream
}

// IDs returns the stream IDs in declaration order.
func (s StreamSet) IDs() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Get returns the stream with the given ID.
func (s StreamSet) Get(id string) (Stream, bool) {
	st, ok := s.streams[id]
	return st, ok
}

// Has reports whether id is a known stream.
func (s StreamSet) Has(id string) bool {
	_, ok := s.streams[id]
	return ok
}

func (s StreamSet) Len() int {
	return len(s.ids)
}

// UnmarshalJSON decodes a JSON object keeping the key order.
func (s *StreamSet) UnmarshalJSON(data []byte) error {
	*s = StreamSet{streams: make(map[string]Stream)}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("streams: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("streams: expected string key, got %v", keyTok)
		}
		var stream Stream
		if err := dec.Decode(&stream); err != nil {
			return fmt.Errorf("streams: decode %q: %w", key, err)
		}
		s.put(key, stream)
	}

	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the set as a JSON object in declaration order.
func (s StreamSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range s.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.streams[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// QuizData is the quiz for one interest.
type QuizData struct {
	Questions []QuizQuestion `json:"questions"`
	Streams   StreamSet      `json:"streams"`
}

// QuizBank is the quiz-questions.json document, keyed by interest ID.
type QuizBank map[string]QuizData

// Answer is the option chosen for one question.
type Answer struct {
	QuestionID     int        `json:"questionId"`
	SelectedOption QuizOption `json:"selectedOption"`
}

// StreamScore is a ranked quiz recommendation.
type StreamScore struct {
	StreamID   string `json:"streamId"`
	Stream     Stream `json:"stream"`
	Score      int    `json:"score"`
	Percentage int    `json:"percentage"`
}
