package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Resource names one static JSON document of the content source.
type Resource string

const (
	ResourceCareers          Resource = "careers"
	ResourceLibrary          Resource = "resources"
	ResourceSuccessStories   Resource = "success-stories"
	ResourceMultimedia       Resource = "multimedia"
	ResourceInterviewTips    Resource = "interview-tips"
	ResourceResumeGuidelines Resource = "resume-guidelines"
	ResourceStreamSelection  Resource = "stream-selection"
	ResourceStudyAbroad      Resource = "study-abroad"
	ResourceInterests        Resource = "interests"
	ResourceQuizQuestions    Resource = "quiz-questions"
)

var resourceFiles = map[Resource]string{
	ResourceCareers:          "careers.json",
	ResourceLibrary:          "resources.json",
	ResourceSuccessStories:   "success-stories.json",
	ResourceMultimedia:       "multimedia-content.json",
	ResourceInterviewTips:    "interview-tips.json",
	ResourceResumeGuidelines: "resume-guidelines.json",
	ResourceStreamSelection:  "stream-selection.json",
	ResourceStudyAbroad:      "study-abroad.json",
	ResourceInterests:        "interests.json",
	ResourceQuizQuestions:    "quiz-questions.json",
}

// AllResources lists every content resource in a stable order.
func AllResources() []Resource {
	return []Resource{
		ResourceCareers,
		ResourceLibrary,
		ResourceSuccessStories,
		ResourceMultimedia,
		ResourceInterviewTips,
		ResourceResumeGuidelines,
		ResourceStreamSelection,
		ResourceStudyAbroad,
		ResourceInterests,
		ResourceQuizQuestions,
	}
}

// FileName returns the document name under the content root.
func (r Resource) FileName() string {
	return resourceFiles[r]
}

// ParseResource accepts either a resource name ("careers") or its file
// name ("careers.json").
func ParseResource(name string) (Resource, error) {
	if _, ok := resourceFiles[Resource(name)]; ok {
		return Resource(name), nil
	}
	for r, file := range resourceFiles {
		if file == name {
			return r, nil
		}
	}
	return "", NewUnsupportedResourceError(name)
}

// Career is one entry of the career bank.
type Career struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Skills          []string `json:"skills"`
	EducationalPath string   `json:"educationalPath"`
	SalaryRange     string   `json:"salaryRange"`
	Industry        string   `json:"industry"`
	Image           string   `json:"image"`
}

// CareerIndustries are the industry filters offered by the career bank.
var CareerIndustries = []string{"Technology", "Healthcare", "Business", "Education", "Arts", "Government"}

func (c Career) SearchFields() []string { return []string{c.Title, c.Description} }
func (c Career) TagValues() []string    { return c.Skills }
func (c Career) CategoryValue() string  { return c.Industry }
func (c Career) SortTitle() string      { return c.Title }
func (c Career) SortNumber() int        { return ExtractSalaryMax(c.SalaryRange) }

var salaryRangePattern = regexp.MustCompile(`\$(\d+)k–\$(\d+)k`)

// ExtractSalaryMax returns the upper bound of a "$80k–$120k" style range in
// thousands, or 0 when the string does not follow that pattern.
func ExtractSalaryMax(salaryRange string) int {
	match := salaryRangePattern.FindStringSubmatch(salaryRange)
	if match == nil {
		return 0
	}
	n, err := strconv.Atoi(match[2])
	if err != nil {
		return 0
	}
	return n
}

// ResourceKind is one tab of the resource library.
type ResourceKind string

const (
	ResourceKindArticles   ResourceKind = "articles"
	ResourceKindEbooks     ResourceKind = "ebooks"
	ResourceKindChecklists ResourceKind = "checklists"
	ResourceKindWebinars   ResourceKind = "webinars"
)

func ResourceKinds() []ResourceKind {
	return []ResourceKind{ResourceKindArticles, ResourceKindEbooks, ResourceKindChecklists, ResourceKindWebinars}
}

// LibraryResource is an article, ebook, checklist or webinar.
type LibraryResource struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author,omitempty"`
	ReadTime    string   `json:"readTime,omitempty"`
	Pages       string   `json:"pages,omitempty"`
	Items       string   `json:"items,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Speaker     string   `json:"speaker,omitempty"`
	Date        string   `json:"date,omitempty"`

	// Kind is filled in from the tab the resource was listed under.
	Kind ResourceKind `json:"-"`
}

func (r LibraryResource) SearchFields() []string { return []string{r.Title, r.Description} }
func (r LibraryResource) TagValues() []string    { return r.Tags }
func (r LibraryResource) CategoryValue() string  { return string(r.Kind) }

// LibraryCatalog is the resources.json document.
type LibraryCatalog struct {
	Articles   []LibraryResource `json:"articles"`
	Ebooks     []LibraryResource `json:"ebooks"`
	Checklists []LibraryResource `json:"checklists"`
	Webinars   []LibraryResource `json:"webinars"`
}

// Items returns the resources of one kind with Kind set.
func (l *LibraryCatalog) Items(kind ResourceKind) []LibraryResource {
	var src []LibraryResource
	switch kind {
	case ResourceKindArticles:
		src = l.Articles
	case ResourceKindEbooks:
		src = l.Ebooks
	case ResourceKindChecklists:
		src = l.Checklists
	case ResourceKindWebinars:
		src = l.Webinars
	}
	items := make([]LibraryResource, len(src))
	for i, r := range src {
		r.Kind = kind
		items[i] = r
	}
	return items
}

// Story is a success story.
type Story struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Photo         string   `json:"photo"`
	Domain        string   `json:"domain"`
	CurrentRole   string   `json:"currentRole"`
	Journey       string   `json:"journey"`
	KeyMilestones []string `json:"keyMilestones"`
	Inspiration   string   `json:"inspiration"`
	Tags          []string `json:"tags"`
}

var StoryDomains = []string{"engineering", "medicine", "arts", "business", "education", "science", "finance", "sports"}

func (s Story) SearchFields() []string { return []string{s.Name, s.CurrentRole, s.Journey} }
func (s Story) TagValues() []string    { return s.Tags }
func (s Story) CategoryValue() string  { return s.Domain }

type StoryCollection struct {
	Stories []Story `json:"stories"`
}

// MultimediaItem is a video or podcast episode.
type MultimediaItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	YoutubeID    string   `json:"youtubeId,omitempty"`
	AudioURL     string   `json:"audioUrl,omitempty"`
	Duration     string   `json:"duration"`
	Category     string   `json:"category"`
	UserType     []string `json:"userType"`
	Tags         []string `json:"tags"`
	Speaker      string   `json:"speaker"`
	SpeakerTitle string   `json:"speakerTitle"`
	Transcript   string   `json:"transcript"`
}

var (
	MultimediaCategories = []string{"motivation", "job-roles", "internships", "career-change", "professional-development", "entrepreneurship", "academic-success"}
	MultimediaAudiences  = []string{"student", "graduate", "professional"}
)

func (m MultimediaItem) SearchFields() []string { return []string{m.Title, m.Description, m.Speaker} }
func (m MultimediaItem) TagValues() []string    { return m.Tags }
func (m MultimediaItem) CategoryValue() string  { return m.Category }

// ForAudience reports whether the item targets the given user type.
func (m MultimediaItem) ForAudience(audience string) bool {
	for _, t := range m.UserType {
		if t == audience {
			return true
		}
	}
	return false
}

// CategoryLabel renders "job-roles" as "JOB ROLES".
func (m MultimediaItem) CategoryLabel() string {
	return strings.ToUpper(strings.Replace(m.Category, "-", " ", 1))
}

type MultimediaLibrary struct {
	Videos   []MultimediaItem `json:"videos"`
	Podcasts []MultimediaItem `json:"podcasts"`
}

// Interest is a quiz topic offered on the interest selection screen.
type Interest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type InterestCatalog struct {
	Interests []Interest `json:"interests"`
}

// Coaching documents

type InterviewTips struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Sections    []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Tips  []struct {
			Category    string   `json:"category"`
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Details     []string `json:"details"`
		} `json:"tips"`
	} `json:"sections"`
	CommonMistakes []string `json:"commonMistakes"`
	FollowUp       []string `json:"followUp"`
}

type ResumeGuidelines struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Sections    []struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		Components []struct {
			Section     string   `json:"section"`
			Description string   `json:"description"`
			Elements    []string `json:"elements"`
			Tips        []string `json:"tips"`
		} `json:"components,omitempty"`
		Rules []struct {
			Aspect    string   `json:"aspect"`
			Guideline string   `json:"guideline"`
			Details   []string `json:"details"`
		} `json:"rules,omitempty"`
		Tips []struct {
			Category string   `json:"category"`
			Title    string   `json:"title"`
			Examples []string `json:"examples"`
		} `json:"tips,omitempty"`
		Formats []struct {
			Type        string   `json:"type"`
			Description string   `json:"description"`
			BestFor     []string `json:"bestFor"`
			Pros        []string `json:"pros"`
		} `json:"formats,omitempty"`
	} `json:"sections"`
	CommonMistakes []string `json:"commonMistakes"`
	Checklist      []string `json:"checklist"`
}

type StreamSelectionGuide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Sections    []struct {
		ID          string   `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Subjects    []string `json:"subjects"`
		CareerPaths []string `json:"careerPaths"`
		Eligibility string   `json:"eligibility"`
		Pros        []string `json:"pros"`
		Cons        []string `json:"cons"`
	} `json:"sections"`
	DecisionFactors []struct {
		Factor      string `json:"factor"`
		Description string `json:"description"`
	} `json:"decisionFactors"`
	Tips []string `json:"tips"`
}

type StudyAbroadGuide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Sections    []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Steps []struct {
			Step        string   `json:"step"`
			Description string   `json:"description"`
			Details     []string `json:"details"`
		} `json:"steps"`
	} `json:"sections"`
	Scholarships []struct {
		Name        string `json:"name"`
		Country     string `json:"country"`
		Description string `json:"description"`
		Coverage    string `json:"coverage"`
	} `json:"scholarships"`
	Tips []string `json:"tips"`
}
