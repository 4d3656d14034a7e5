package service

import (
	"context"
	"testing"

	"career-passport/internal/domain"
	"career-passport/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCareers() []domain.Career {
	return []domain.Career{
		{ID: 1, Title: "Software Engineer", Industry: "Technology", Skills: []string{"Go"}, SalaryRange: "$90k–$150k"},
		{ID: 2, Title: "Nurse", Industry: "Healthcare", Skills: []string{"Care"}, SalaryRange: "$60k–$95k"},
		{ID: 3, Title: "Data Analyst", Industry: "Technology", Skills: []string{"SQL"}, SalaryRange: "$70k–$120k"},
	}
}

func careerIDs(careers []domain.Career) []int {
	ids := make([]int, len(careers))
	for i, c := range careers {
		ids[i] = c.ID
	}
	return ids
}

func TestCatalogService_CareersDefaultSortIsTitle(t *testing.T) {
	content := new(MockCatalogContent)
	content.On("Careers", mock.Anything).Return(testCareers(), nil)
	svc := NewCatalogService(content)

	got, err := svc.Careers(context.Background(), CareerQuery{})

	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, careerIDs(got))
}

func TestCatalogService_CareersFilterAndSalarySort(t *testing.T) {
	content := new(MockCatalogContent)
	content.On("Careers", mock.Anything).Return(testCareers(), nil)
	svc := NewCatalogService(content)

	got, err := svc.Careers(context.Background(), CareerQuery{
		Industries: []string{"Technology"},
		Sort:       search.SortNumberDesc,
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, careerIDs(got))
}

func TestCatalogService_CareersRejectsUnknownSort(t *testing.T) {
	content := new(MockCatalogContent)
	content.On("Careers", mock.Anything).Return(testCareers(), nil)
	svc := NewCatalogService(content)

	_, err := svc.Careers(context.Background(), CareerQuery{Sort: "random"})

	assert.Equal(t, domain.ErrInvalidInput, domain.CodeOf(err))
}

func TestCatalogService_ResourcesTagChipsCoverWholeTab(t *testing.T) {
	content := new(MockCatalogContent)
	content.On("Library", mock.Anything).Return(domain.LibraryCatalog{
		Articles: []domain.LibraryResource{
			{ID: 1, Title: "Negotiation", Tags: []string{"salary", "offers"}},
			{ID: 2, Title: "Networking", Tags: []string{"linkedin", "salary"}},
		},
		Ebooks: []domain.LibraryResource{{ID: 1, Title: "Career Atlas", Tags: []string{"planning"}}},
	}, nil)
	svc := NewCatalogService(content)

	page, err := svc.Resources(context.Background(), ResourceQuery{Tags: []string{"linkedin"}})

	require.NoError(t, err)
	assert.Equal(t, domain.ResourceKindArticles, page.Kind)
	assert.Equal(t, []string{"salary", "offers", "linkedin"}, page.Tags)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Networking", page.Items[0].Title)
	assert.Equal(t, domain.ResourceKindArticles, page.Items[0].Kind)
	assert.Equal(t, "resource-articles-2", page.Items[0].Bookmark(fixedNow).ID)

	ebooks, err := svc.Resources(context.Background(), ResourceQuery{Kind: domain.ResourceKindEbooks})
	require.NoError(t, err)
	assert.Equal(t, []string{"planning"}, ebooks.Tags)

	_, err = svc.Resources(context.Background(), ResourceQuery{Kind: "podcasts"})
	assert.Equal(t, domain.ErrInvalidInput, domain.CodeOf(err))
}

func TestCatalogService_StoriesDomainAll(t *testing.T) {
	content := new(MockCatalogContent)
	content.On("Stories", mock.Anything).Return([]domain.Story{
		{ID: 1, Name: "Asha", Domain: "medicine", Journey: "From nursing to surgery"},
		{ID: 2, Name: "Ravi", Domain: "engineering", Journey: "Started a robotics club"},
	}, nil)
	svc := NewCatalogService(content)

	all, err := svc.Stories(context.Background(), StoryDomainAll, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	eng, err := svc.Stories(context.Background(), "engineering", "")
	require.NoError(t, err)
	require.Len(t, eng, 1)
	assert.Equal(t, "Ravi", eng[0].Name)

	byJourney, err := svc.Stories(context.Background(), "", "SURGERY")
	require.NoError(t, err)
	require.Len(t, byJourney, 1)
	assert.Equal(t, "Asha", byJourney[0].Name)
}

func TestCatalogService_MultimediaFilters(t *testing.T) {
	content := new(MockCatalogContent)
	content.On("Multimedia", mock.Anything).Return(domain.MultimediaLibrary{
		Videos: []domain.MultimediaItem{
			{ID: "v1", Title: "First job", Category: "job-roles", UserType: []string{"graduate"}, Speaker: "Mira"},
			{ID: "v2", Title: "Staying curious", Category: "motivation", UserType: []string{"student", "graduate"}},
		},
		Podcasts: []domain.MultimediaItem{
			{ID: "p1", Title: "Switching careers", Category: "career-change", UserType: []string{"professional"}},
		},
	}, nil)
	svc := NewCatalogService(content)
	ctx := context.Background()

	got, err := svc.Multimedia(ctx, MediaQuery{Audience: "graduate"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.Multimedia(ctx, MediaQuery{Audience: "graduate", Category: "motivation"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].ID)

	got, err = svc.Multimedia(ctx, MediaQuery{Query: "mira"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "v1", got[0].ID)

	got, err = svc.Multimedia(ctx, MediaQuery{Kind: MediaPodcasts})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CAREER CHANGE", got[0].CategoryLabel())

	_, err = svc.Multimedia(ctx, MediaQuery{Kind: "slides"})
	assert.Equal(t, domain.ErrInvalidInput, domain.CodeOf(err))
}

func TestCatalogService_CoachingPassesThrough(t *testing.T) {
	content := new(MockCatalogContent)
	content.On("InterviewTips", mock.Anything).Return(domain.InterviewTips{Title: "Interview Tips"}, nil)
	content.On("StudyAbroad", mock.Anything).Return(domain.StudyAbroadGuide{Title: "Study Abroad"}, nil)
	svc := NewCatalogService(content)

	tips, err := svc.InterviewTips(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Interview Tips", tips.Title)

	guide, err := svc.StudyAbroad(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Study Abroad", guide.Title)
	content.AssertExpectations(t)
}
