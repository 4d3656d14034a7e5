package service

import (
	"context"
	"slices"

	"career-passport/internal/domain"
	"career-passport/internal/search"
)

// StoryDomainAll selects every story domain.
const StoryDomainAll = "all"

// Multimedia tabs.
const (
	MediaVideos   = "videos"
	MediaPodcasts = "podcasts"
)

// CatalogContent is the content behind the browsing pages.
type CatalogContent interface {
	Careers(ctx context.Context) ([]domain.Career, error)
	Library(ctx context.Context) (domain.LibraryCatalog, error)
	Stories(ctx context.Context) ([]domain.Story, error)
	Multimedia(ctx context.Context) (domain.MultimediaLibrary, error)
	InterviewTips(ctx context.Context) (domain.InterviewTips, error)
	ResumeGuidelines(ctx context.Context) (domain.ResumeGuidelines, error)
	StreamSelection(ctx context.Context) (domain.StreamSelectionGuide, error)
	StudyAbroad(ctx context.Context) (domain.StudyAbroadGuide, error)
}

// CareerQuery is the state of the career bank filters.
type CareerQuery struct {
	Query      string
	Industries []string
	Sort       search.SortOrder
}

// ResourceQuery is the state of one resource library tab.
type ResourceQuery struct {
	Kind  domain.ResourceKind
	Query string
	Tags  []string
}

// ResourcePage is a filtered resource tab and its tag chips.
type ResourcePage struct {
	Kind  domain.ResourceKind      `json:"kind"`
	Items []domain.LibraryResource `json:"items"`
	// Tags are the distinct tags of the whole tab in first-seen order.
	Tags []string `json:"tags"`
}

// MediaQuery is the state of the multimedia page.
type MediaQuery struct {
	Kind     string
	Query    string
	Category string
	Audience string
}

// CatalogService serves the browsing pages.
type CatalogService interface {
	Careers(ctx context.Context, q CareerQuery) ([]domain.Career, error)
	Resources(ctx context.Context, q ResourceQuery) (ResourcePage, error)
	// Stories filters by domain; StoryDomainAll or "" disables the filter.
	Stories(ctx context.Context, storyDomain, query string) ([]domain.Story, error)
	Multimedia(ctx context.Context, q MediaQuery) ([]domain.MultimediaItem, error)
	InterviewTips(ctx context.Context) (domain.InterviewTips, error)
	ResumeGuidelines(ctx context.Context) (domain.ResumeGuidelines, error)
	StreamSelection(ctx context.Context) (domain.StreamSelectionGuide, error)
	StudyAbroad(ctx context.Context) (domain.StudyAbroadGuide, error)
}

type catalogService struct {
	content CatalogContent
}

func NewCatalogService(content CatalogContent) CatalogService {
	return &catalogService{content: content}
}

func (s *catalogService) Careers(ctx context.Context, q CareerQuery) ([]domain.Career, error) {
	careers, err := s.content.Careers(ctx)
	if err != nil {
		return nil, err
	}
	order := q.Sort
	if order == "" {
		order = search.DefaultSortOrder
	}
	if !order.Valid() {
		return nil, domain.NewInvalidInputError("unknown sort order: " + string(order))
	}
	out := search.Filter(careers, search.Criteria{Query: q.Query, Categories: q.Industries})
	search.Sort(out, order)
	return out, nil
}

func (s *catalogService) Resources(ctx context.Context, q ResourceQuery) (ResourcePage, error) {
	kind := q.Kind
	if kind == "" {
		kind = domain.ResourceKindArticles
	}
	if !slices.Contains(domain.ResourceKinds(), kind) {
		return ResourcePage{}, domain.NewInvalidInputError("unknown resource kind: " + string(kind))
	}

	lib, err := s.content.Library(ctx)
	if err != nil {
		return ResourcePage{}, err
	}
	items := lib.Items(kind)
	return ResourcePage{
		Kind:  kind,
		Items: search.Filter(items, search.Criteria{Query: q.Query, Tags: q.Tags}),
		Tags:  search.DistinctTags(items),
	}, nil
}

func (s *catalogService) Stories(ctx context.Context, storyDomain, query string) ([]domain.Story, error) {
	stories, err := s.content.Stories(ctx)
	if err != nil {
		return nil, err
	}
	c := search.Criteria{Query: query}
	if storyDomain != "" && storyDomain != StoryDomainAll {
		c.Categories = []string{storyDomain}
	}
	return search.Filter(stories, c), nil
}

func (s *catalogService) Multimedia(ctx context.Context, q MediaQuery) ([]domain.MultimediaItem, error) {
	lib, err := s.content.Multimedia(ctx)
	if err != nil {
		return nil, err
	}

	var items []domain.MultimediaItem
	switch q.Kind {
	case MediaVideos, "":
		items = lib.Videos
	case MediaPodcasts:
		items = lib.Podcasts
	default:
		return nil, domain.NewInvalidInputError("unknown media kind: " + q.Kind)
	}

	c := search.Criteria{Query: q.Query}
	if q.Category != "" {
		c.Categories = []string{q.Category}
	}
	var extra []func(domain.MultimediaItem) bool
	if q.Audience != "" {
		extra = append(extra, func(m domain.MultimediaItem) bool { return m.ForAudience(q.Audience) })
	}
	return search.Filter(items, c, extra...), nil
}

func (s *catalogService) InterviewTips(ctx context.Context) (domain.InterviewTips, error) {
	return s.content.InterviewTips(ctx)
}

func (s *catalogService) ResumeGuidelines(ctx context.Context) (domain.ResumeGuidelines, error) {
	return s.content.ResumeGuidelines(ctx)
}

func (s *catalogService) StreamSelection(ctx context.Context) (domain.StreamSelectionGuide, error) {
	return s.content.StreamSelection(ctx)
}

func (s *catalogService) StudyAbroad(ctx context.Context) (domain.StudyAbroadGuide, error) {
	return s.content.StudyAbroad(ctx)
}
