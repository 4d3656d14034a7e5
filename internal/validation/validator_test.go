package validation

import (
	"errors"
	"testing"

	"career-passport/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ContactForm(t *testing.T) {
	v := New()

	err := v.Validate(domain.ContactForm{Name: "Asha", Email: "not-an-email", Message: "hi"})

	require.Error(t, err)
	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.ErrValidation, de.Code)
	assert.Equal(t, map[string]string{
		"email":   "must be a valid email address",
		"subject": "is required",
	}, de.Details)
	assert.Equal(t, "validation failed: email must be a valid email address; subject is required", de.Message)
}

func TestValidate_BookmarkInput(t *testing.T) {
	v := New()

	valid := domain.NewBookmarkInput{
		Title:       "Scholarships list",
		Type:        domain.BookmarkTypeResource,
		Description: "Funding options",
		URL:         "https://example.org/scholarships",
	}
	assert.NoError(t, v.Validate(valid))

	invalid := valid
	invalid.Type = "podcast"
	invalid.URL = "not a url"
	err := v.Validate(invalid)

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "must be one of: career resource story multimedia", de.Details["type"])
	assert.Equal(t, "must be a valid URL", de.Details["url"])
}

func TestValidate_MaxLength(t *testing.T) {
	v := New()
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}

	err := v.Validate(domain.NewBookmarkInput{Title: string(long), Type: domain.BookmarkTypeCareer, Description: "d"})

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "must not exceed 200 characters", de.Details["title"])
}

func TestValidate_NonStruct(t *testing.T) {
	err := New().Validate("just a string")
	assert.Equal(t, domain.ErrInvalidInput, domain.CodeOf(err))
}
