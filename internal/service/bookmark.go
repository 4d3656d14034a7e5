package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"career-passport/internal/domain"
	"career-passport/internal/logger"
	"career-passport/internal/search"
	"career-passport/internal/storage"
	"career-passport/internal/util"
	"career-passport/internal/validation"

	"go.uber.org/zap"
)

// BookmarkService is the single bookmark store every page reads and
// writes through. Entries are keyed by "{type}-{sourceId}".
type BookmarkService interface {
	// List returns the entries matching c in insertion order.
	List(ctx context.Context, c search.Criteria) ([]domain.Bookmark, error)
	Get(ctx context.Context, id string) (domain.Bookmark, error)
	Contains(ctx context.Context, id string) (bool, error)
	// IDs returns the set of saved IDs, used to mark bookmarked cards.
	IDs(ctx context.Context) (map[string]bool, error)
	// Add inserts b, or replaces the entry with the same ID in place.
	Add(ctx context.Context, b domain.Bookmark) error
	// Create validates a manager entry and saves it under a new custom ID.
	Create(ctx context.Context, in domain.NewBookmarkInput) (domain.Bookmark, error)
	// Update replaces an existing entry; BOOKMARK_NOT_FOUND when absent.
	Update(ctx context.Context, b domain.Bookmark) error
	// Remove deletes the entry. Absent IDs are not an error.
	Remove(ctx context.Context, id string) error
	// Toggle removes id when present, otherwise adds factory(). It reports
	// whether id is bookmarked afterwards.
	Toggle(ctx context.Context, id string, factory func() domain.Bookmark) (bool, error)
}

type bookmarkService struct {
	store     domain.KeyValueStore
	validator *validation.Validator
	now       func() time.Time

	// mu serialises read-modify-write cycles on the collection.
	mu sync.Mutex
}

// NewBookmarkService creates a bookmark store persisted in store.
func NewBookmarkService(store domain.KeyValueStore, validator *validation.Validator) BookmarkService {
	if validator == nil {
		validator = validation.New()
	}
	return &bookmarkService{store: store, validator: validator, now: time.Now}
}

func (s *bookmarkService) load(ctx context.Context) ([]domain.Bookmark, error) {
	raw, err := s.store.Get(ctx, storage.BookmarksKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return []domain.Bookmark{}, nil
		}
		logger.Get().Error("Failed to read bookmarks", zap.Error(err))
		return nil, domain.NewStorageError("failed to read bookmarks", err)
	}

	bookmarks := []domain.Bookmark{}
	if strings.TrimSpace(raw) == "" {
		return bookmarks, nil
	}
	if err := json.Unmarshal([]byte(raw), &bookmarks); err != nil {
		logger.Get().Error("Stored bookmarks are not valid JSON", zap.Error(err))
		return nil, domain.NewStorageError("failed to decode stored bookmarks", err)
	}
	return bookmarks, nil
}

// save rewrites the whole collection under the fixed key.
func (s *bookmarkService) save(ctx context.Context, bookmarks []domain.Bookmark) error {
	data, err := json.Marshal(bookmarks)
	if err != nil {
		return domain.NewInternalError("failed to encode bookmarks", err)
	}
	if err := s.store.Set(ctx, storage.BookmarksKey, string(data)); err != nil {
		logger.Get().Error("Failed to save bookmarks", zap.Error(err), zap.Int("count", len(bookmarks)))
		return domain.NewStorageError("failed to save bookmarks", err)
	}
	logger.Get().Debug("Bookmarks saved", zap.Int("count", len(bookmarks)))
	return nil
}

func indexOf(bookmarks []domain.Bookmark, id string) int {
	for i, b := range bookmarks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (s *bookmarkService) List(ctx context.Context, c search.Criteria) ([]domain.Bookmark, error) {
	bookmarks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(bookmarks, c), nil
}

func (s *bookmarkService) Get(ctx context.Context, id string) (domain.Bookmark, error) {
	bookmarks, err := s.load(ctx)
	if err != nil {
		return domain.Bookmark{}, err
	}
	if i := indexOf(bookmarks, id); i >= 0 {
		return bookmarks[i], nil
	}
	return domain.Bookmark{}, domain.NewBookmarkNotFoundError(id)
}

func (s *bookmarkService) Contains(ctx context.Context, id string) (bool, error) {
	bookmarks, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(bookmarks, id) >= 0, nil
}

func (s *bookmarkService) IDs(ctx context.Context) (map[string]bool, error) {
	bookmarks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(bookmarks))
	for _, b := range bookmarks {
		ids[b.ID] = true
	}
	return ids, nil
}

func (s *bookmarkService) Add(ctx context.Context, b domain.Bookmark) error {
	if b.ID == "" {
		return domain.NewInvalidInputError("bookmark id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.load(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, upsert(bookmarks, s.normalize(b)))
}

func upsert(bookmarks []domain.Bookmark, b domain.Bookmark) []domain.Bookmark {
	if i := indexOf(bookmarks, b.ID); i >= 0 {
		bookmarks[i] = b
		return bookmarks
	}
	return append(bookmarks, b)
}

// normalize fills the defaults an entry must carry once stored.
func (s *bookmarkService) normalize(b domain.Bookmark) domain.Bookmark {
	if b.DateAdded == "" {
		b.DateAdded = s.now().UTC().Format(domain.DateLayout)
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	return b
}

func (s *bookmarkService) Create(ctx context.Context, in domain.NewBookmarkInput) (domain.Bookmark, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := s.validator.Validate(in); err != nil {
		return domain.Bookmark{}, err
	}

	now := s.now()
	b := s.normalize(domain.Bookmark{
		ID:          domain.CustomBookmarkPrefix + "-" + util.NewULIDAt(now),
		Title:       in.Title,
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
		URL:         in.URL,
		Notes:       in.Notes,
		DateAdded:   now.UTC().Format(domain.DateLayout),
		Tags:        cleanTags(in.Tags),
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.load(ctx)
	if err != nil {
		return domain.Bookmark{}, err
	}
	if err := s.save(ctx, append(bookmarks, b)); err != nil {
		return domain.Bookmark{}, err
	}
	logger.Get().Info("Bookmark created", zap.String("id", b.ID), zap.String("type", string(b.Type)))
	return b, nil
}

// cleanTags trims tags and drops empty ones, keeping order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *bookmarkService) Update(ctx context.Context, b domain.Bookmark) error {
	if err := s.validator.Validate(b); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(bookmarks, b.ID)
	if i < 0 {
		return domain.NewBookmarkNotFoundError(b.ID)
	}
	b.Tags = cleanTags(b.Tags)
	bookmarks[i] = s.normalize(b)
	return s.save(ctx, bookmarks)
}

func (s *bookmarkService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(bookmarks, id)
	if i < 0 {
		return nil
	}
	return s.save(ctx, append(bookmarks[:i], bookmarks[i+1:]...))
}

func (s *bookmarkService) Toggle(ctx context.Context, id string, factory func() domain.Bookmark) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	if i := indexOf(bookmarks, id); i >= 0 {
		if err := s.save(ctx, append(bookmarks[:i], bookmarks[i+1:]...)); err != nil {
			return true, err
		}
		return false, nil
	}

	b := factory()
	if b.ID == "" {
		b.ID = id
	}
	if b.ID != id {
		return false, domain.NewInvalidInputError("bookmark factory returned id " + b.ID + " for " + id)
	}
	if err := s.save(ctx, append(bookmarks, s.normalize(b))); err != nil {
		return false, err
	}
	return true, nil
}
