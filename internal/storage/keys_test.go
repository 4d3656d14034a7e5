package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	tests := []struct {
		name        string
		namespace   string
		keyName     string
		parts       []string
		expectedKey string
	}{
		{
			name:        "without parts",
			namespace:   "bookmarks",
			keyName:     "collection",
			expectedKey: "careerpassport:bookmarks:collection",
		},
		{
			name:        "with empty parts",
			namespace:   "visits",
			keyName:     "counter",
			parts:       []string{},
			expectedKey: "careerpassport:visits:counter",
		},
		{
			name:        "with multiple parts",
			namespace:   "quiz",
			keyName:     "draft",
			parts:       []string{"science", "v2"},
			expectedKey: "careerpassport:quiz:draft:science_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateKey(tt.namespace, tt.keyName, tt.parts...))
		})
	}
}

func TestFixedKeys(t *testing.T) {
	assert.Equal(t, "careerpassport:bookmarks:collection", BookmarksKey)
	assert.Equal(t, "careerpassport:visits:counter", VisitCounterKey)
}
