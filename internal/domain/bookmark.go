package domain

import (
	"fmt"
	"strconv"
	"time"
)

// BookmarkType identifies the page a bookmark was saved from.
type BookmarkType string

const (
	BookmarkTypeCareer     BookmarkType = "career"
	BookmarkTypeResource   BookmarkType = "resource"
	BookmarkTypeStory      BookmarkType = "story"
	BookmarkTypeMultimedia BookmarkType = "multimedia"
)

// CustomBookmarkPrefix prefixes IDs of entries created in the bookmark manager.
const CustomBookmarkPrefix = "custom"

// DateLayout is the calendar-date format of Bookmark.DateAdded.
const DateLayout = "2006-01-02"

func BookmarkTypes() []BookmarkType {
	return []BookmarkType{BookmarkTypeCareer, BookmarkTypeResource, BookmarkTypeStory, BookmarkTypeMultimedia}
}

// Bookmark is a saved reference to a content item.
type Bookmark struct {
	ID          string       `json:"id"`
	Title       string       `json:"title" validate:"required,max=200"`
	Type        BookmarkType `json:"type" validate:"required,oneof=career resource story multimedia"`
	Category    string       `json:"category,omitempty"`
	Description string       `json:"description"`
	URL         string       `json:"url,omitempty"`
	Notes       string       `json:"notes"`
	DateAdded   string       `json:"dateAdded"`
	Tags        []string     `json:"tags"`
}

// NewBookmarkID builds the canonical "{type}-{sourceId}" identifier.
func NewBookmarkID(t BookmarkType, sourceID string) string {
	return fmt.Sprintf("%s-%s", t, sourceID)
}

func (b Bookmark) SearchFields() []string { return []string{b.Title, b.Description, b.Notes} }
func (b Bookmark) TagValues() []string    { return b.Tags }
func (b Bookmark) CategoryValue() string  { return string(b.Type) }

// NewBookmarkInput is what the bookmark manager collects for a custom entry.
type NewBookmarkInput struct {
	Title       string       `json:"title" validate:"required,max=200"`
	Type        BookmarkType `json:"type" validate:"required,oneof=career resource story multimedia"`
	Category    string       `json:"category"`
	Description string       `json:"description" validate:"required"`
	URL         string       `json:"url" validate:"omitempty,url"`
	Notes       string       `json:"notes"`
	Tags        []string     `json:"tags"`
}

func dateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Bookmark builds the bookmark a career page saves on toggle.
func (c Career) Bookmark(addedOn time.Time) Bookmark {
	id := strconv.Itoa(c.ID)
	return Bookmark{
		ID:          NewBookmarkID(BookmarkTypeCareer, id),
		Title:       c.Title,
		Type:        BookmarkTypeCareer,
		Category:    c.Industry,
		Description: c.Description,
		URL:         "/career-bank#" + id,
		DateAdded:   dateOf(addedOn),
		Tags:        append([]string{}, c.Skills...),
	}
}

func (r LibraryResource) Bookmark(addedOn time.Time) Bookmark {
	sourceID := fmt.Sprintf("%s-%d", r.Kind, r.ID)
	return Bookmark{
		ID:          NewBookmarkID(BookmarkTypeResource, sourceID),
		Title:       r.Title,
		Type:        BookmarkTypeResource,
		Category:    string(r.Kind),
		Description: r.Description,
		URL:         "/resource-library#" + sourceID,
		DateAdded:   dateOf(addedOn),
		Tags:        append([]string{}, r.Tags...),
	}
}

func (s Story) Bookmark(addedOn time.Time) Bookmark {
	id := strconv.Itoa(s.ID)
	return Bookmark{
		ID:          NewBookmarkID(BookmarkTypeStory, id),
		Title:       s.Name,
		Type:        BookmarkTypeStory,
		Category:    s.Domain,
		Description: s.CurrentRole,
		URL:         "/success-stories#" + id,
		DateAdded:   dateOf(addedOn),
		Tags:        append([]string{}, s.Tags...),
	}
}

func (m MultimediaItem) Bookmark(addedOn time.Time) Bookmark {
	return Bookmark{
		ID:          NewBookmarkID(BookmarkTypeMultimedia, m.ID),
		Title:       m.Title,
		Type:        BookmarkTypeMultimedia,
		Category:    m.Category,
		Description: m.Description,
		URL:         "/multimedia-guidance#" + m.ID,
		DateAdded:   dateOf(addedOn),
		Tags:        append([]string{}, m.Tags...),
	}
}
