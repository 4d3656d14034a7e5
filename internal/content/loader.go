// Package content fetches, validates and decodes the static JSON documents
// the application renders.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"career-passport/internal/domain"
	"career-passport/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Loader reads content documents from a Source. Every call fetches again;
// concurrent calls for the same resource share one fetch.
type Loader struct {
	source    Source
	validator *Validator
	group     singleflight.Group
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source, validator: NewValidator()}
}

// Source returns the backing source.
func (l *Loader) Source() Source { return l.source }

// Load fetches the raw document of r and validates it. Any failure is a
// CONTENT_UNAVAILABLE domain error wrapping the cause.
func (l *Loader) Load(ctx context.Context, r domain.Resource) ([]byte, error) {
	name := r.FileName()
	if name == "" {
		return nil, domain.NewUnsupportedResourceError(string(r))
	}

	v, err, shared := l.group.Do(string(r), func() (interface{}, error) {
		start := time.Now()
		data, err := l.source.Fetch(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := l.validator.Validate(r, data); err != nil {
			return nil, err
		}
		logger.Get().Debug("Content loaded",
			zap.String("resource", string(r)),
			zap.String("source", l.source.String()),
			zap.Int("bytes", len(data)),
			zap.Duration("took", time.Since(start)))
		return data, nil
	})
	if err != nil {
		logger.Get().Warn("Failed to load content",
			zap.String("resource", string(r)),
			zap.String("source", l.source.String()),
			zap.Error(err))
		return nil, domain.NewContentUnavailableError(r, err)
	}
	if shared {
		logger.Get().Debug("Content fetch shared", zap.String("resource", string(r)))
	}
	return v.([]byte), nil
}

// Decode loads r and unmarshals it into T.
func Decode[T any](ctx context.Context, l *Loader, r domain.Resource) (T, error) {
	var out T
	data, err := l.Load(ctx, r)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, domain.NewContentUnavailableError(r, fmt.Errorf("decode: %w", err))
	}
	return out, nil
}

func (l *Loader) Careers(ctx context.Context) ([]domain.Career, error) {
	return Decode[[]domain.Career](ctx, l, domain.ResourceCareers)
}

func (l *Loader) Library(ctx context.Context) (domain.LibraryCatalog, error) {
	return Decode[domain.LibraryCatalog](ctx, l, domain.ResourceLibrary)
}

func (l *Loader) Stories(ctx context.Context) ([]domain.Story, error) {
	c, err := Decode[domain.StoryCollection](ctx, l, domain.ResourceSuccessStories)
	return c.Stories, err
}

func (l *Loader) Multimedia(ctx context.Context) (domain.MultimediaLibrary, error) {
	return Decode[domain.MultimediaLibrary](ctx, l, domain.ResourceMultimedia)
}

func (l *Loader) Interests(ctx context.Context) ([]domain.Interest, error) {
	c, err := Decode[domain.InterestCatalog](ctx, l, domain.ResourceInterests)
	return c.Interests, err
}

func (l *Loader) QuizBank(ctx context.Context) (domain.QuizBank, error) {
	return Decode[domain.QuizBank](ctx, l, domain.ResourceQuizQuestions)
}

func (l *Loader) InterviewTips(ctx context.Context) (domain.InterviewTips, error) {
	return Decode[domain.InterviewTips](ctx, l, domain.ResourceInterviewTips)
}

func (l *Loader) ResumeGuidelines(ctx context.Context) (domain.ResumeGuidelines, error) {
	return Decode[domain.ResumeGuidelines](ctx, l, domain.ResourceResumeGuidelines)
}

func (l *Loader) StreamSelection(ctx context.Context) (domain.StreamSelectionGuide, error) {
	return Decode[domain.StreamSelectionGuide](ctx, l, domain.ResourceStreamSelection)
}

func (l *Loader) StudyAbroad(ctx context.Context) (domain.StudyAbroadGuide, error) {
	return Decode[domain.StudyAbroadGuide](ctx, l, domain.ResourceStudyAbroad)
}

// CheckResult is the outcome of loading one resource during Check.
type CheckResult struct {
	Resource domain.Resource `json:"resource"`
	File     string          `json:"file"`
	Bytes    int             `json:"bytes"`
	Err      error           `json:"-"`
	Error    string          `json:"error,omitempty"`
}

// OK reports whether the resource loaded and validated.
func (c CheckResult) OK() bool { return c.Err == nil }

// Check loads every resource concurrently and reports each outcome in
// AllResources order. It never fails as a whole; inspect each result.
func (l *Loader) Check(ctx context.Context) []CheckResult {
	resources := domain.AllResources()
	results := make([]CheckResult, len(resources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, r := range resources {
		g.Go(func() error {
			res := CheckResult{Resource: r, File: r.FileName()}
			data, err := l.Load(gctx, r)
			if err != nil {
				res.Err = err
				res.Error = err.Error()
			} else {
				res.Bytes = len(data)
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results
}
