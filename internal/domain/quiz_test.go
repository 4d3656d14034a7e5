package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamSet_UnmarshalKeepsDeclarationOrder(t *testing.T) {
	raw := `{
		"science": {"name": "Science"},
		"commerce": {"name": "Commerce"},
		"arts": {"name": "Arts", "skills": ["writing"]}
	}`

	var set StreamSet
	require.NoError(t, json.Unmarshal([]byte(raw), &set))

	assert.Equal(t, []string{"science", "commerce", "arts"}, set.IDs())
	assert.Equal(t, 3, set.Len())
	arts, ok := set.Get("arts")
	require.True(t, ok)
	assert.Equal(t, []string{"writing"}, arts.Skills)
	assert.False(t, set.Has("law"))
}

func TestStreamSet_MarshalRoundTripOrder(t *testing.T) {
	set := NewStreamSet(
		StreamEntry{ID: "z", Stream: Stream{Name: "Zed"}},
		StreamEntry{ID: "a", Stream: Stream{Name: "Ay"}},
	)

	out, err := json.Marshal(set)
	require.NoError(t, err)

	var back StreamSet
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, []string{"z", "a"}, back.IDs())
}

func TestStreamSet_UnmarshalRejectsArray(t *testing.T) {
	var set StreamSet
	assert.Error(t, json.Unmarshal([]byte(`["science"]`), &set))
}

func TestQuizData_Decode(t *testing.T) {
	raw := `{
		"technology": {
			"questions": [
				{"id": 1, "question": "Pick one", "options": [
					{"text": "Code", "weight": {"engineering": 3, "design": 1}}
				]}
			],
			"streams": {"engineering": {"name": "Engineering"}, "design": {"name": "Design"}}
		}
	}`

	var bank QuizBank
	require.NoError(t, json.Unmarshal([]byte(raw), &bank))

	quiz, ok := bank["technology"]
	require.True(t, ok)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, 3, quiz.Questions[0].Options[0].Weight["engineering"])
	assert.Equal(t, []string{"engineering", "design"}, quiz.Streams.IDs())
}

func TestExtractSalaryMax(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"en dash range", "$80k–$120k", 120},
		{"range with trailing text", "$45k–$70k per year", 70},
		{"hyphen is not the pattern", "$80k-$120k", 0},
		{"missing", "Competitive", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSalaryMax(tt.input))
		})
	}
}

func TestParseResource(t *testing.T) {
	r, err := ParseResource("careers")
	require.NoError(t, err)
	assert.Equal(t, ResourceCareers, r)

	r, err = ParseResource("multimedia-content.json")
	require.NoError(t, err)
	assert.Equal(t, ResourceMultimedia, r)

	_, err = ParseResource("secrets.json")
	assert.Equal(t, ErrUnsupportedResource, CodeOf(err))
}

func TestBookmarkFactories(t *testing.T) {
	day := time.Date(2026, 3, 14, 22, 15, 0, 0, time.UTC)

	career := Career{ID: 7, Title: "Data Scientist", Industry: "Technology", Skills: []string{"Python"}}
	b := career.Bookmark(day)
	assert.Equal(t, "career-7", b.ID)
	assert.Equal(t, BookmarkTypeCareer, b.Type)
	assert.Equal(t, "/career-bank#7", b.URL)
	assert.Equal(t, "2026-03-14", b.DateAdded)
	assert.Equal(t, []string{"Python"}, b.Tags)

	res := LibraryResource{ID: 3, Title: "Checklist", Kind: ResourceKindChecklists}
	assert.Equal(t, "resource-checklists-3", res.Bookmark(day).ID)

	item := MultimediaItem{ID: "v-12", Title: "Internship hunt"}
	assert.Equal(t, "multimedia-v-12", item.Bookmark(day).ID)

	story := Story{ID: 2, Name: "Asha", Domain: "medicine"}
	assert.Equal(t, "story-2", story.Bookmark(day).ID)
}

func TestDomainError_UnwrapAndJSON(t *testing.T) {
	cause := assert.AnError
	err := NewStorageError("failed to save bookmarks", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrStorage, CodeOf(err))

	out, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.JSONEq(t, `{"code":"STORAGE_ERROR","message":"failed to save bookmarks"}`, string(out))
}
