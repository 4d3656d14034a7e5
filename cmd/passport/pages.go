package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"career-passport/internal/domain"
	"career-passport/internal/search"
	"career-passport/internal/service"

	"github.com/spf13/cobra"
)

func (c *cli) homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the welcome page and visit counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			visits, err := c.app.visits.RecordVisit(ctx)
			if err != nil {
				return err
			}
			saved, err := c.app.bookmarks.IDs(ctx)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, map[string]int{"visits": visits, "bookmarks": len(saved)})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Welcome to Career Passport")
			fmt.Fprintf(out, "Visitors so far: %d\n", visits)
			fmt.Fprintf(out, "Saved bookmarks: %d\n\n", len(saved))
			fmt.Fprintln(out, "Explore: careers, resources, stories, multimedia, coaching, quiz, bookmarks")
			return nil
		},
	}
}

func (c *cli) careersCmd() *cobra.Command {
	var (
		query      string
		industries []string
		sortOrder  string
	)
	cmd := &cobra.Command{
		Use:   "careers",
		Short: "Browse the career bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			q := service.CareerQuery{Query: query, Industries: industries, Sort: search.SortOrder(sortOrder)}
			careers, err := render(ctx, func(ctx context.Context) ([]domain.Career, error) {
				return c.app.catalog.Careers(ctx, q)
			})
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, careers)
			}
			saved, err := c.app.bookmarks.IDs(ctx)
			if err != nil {
				return err
			}

			active := search.Criteria{Query: query, Categories: industries}.ActiveCount()
			fmt.Fprintf(cmd.OutOrStdout(), "%d careers (%d filters active)\n", len(careers), active)
			rows := make([][]string, len(careers))
			for i, cr := range careers {
				id := strconv.Itoa(cr.ID)
				rows[i] = []string{id, cr.Title, cr.Industry, cr.SalaryRange, savedMark(saved[domain.NewBookmarkID(domain.BookmarkTypeCareer, id)])}
			}
			return table(cmd.OutOrStdout(), "ID\tTITLE\tINDUSTRY\tSALARY\tSAVED", rows)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search titles, descriptions and skills")
	cmd.Flags().StringSliceVarP(&industries, "industry", "i", nil, "Industry filter: "+strings.Join(domain.CareerIndustries, ", "))
	cmd.Flags().StringVarP(&sortOrder, "sort", "s", string(search.DefaultSortOrder), "Sort order: "+sortOrderNames())
	return cmd
}

func sortOrderNames() string {
	names := make([]string, 0, 4)
	for _, o := range search.SortOrders() {
		names = append(names, string(o))
	}
	return strings.Join(names, ", ")
}

func (c *cli) resourcesCmd() *cobra.Command {
	var (
		kind  string
		query string
		tags  []string
	)
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Browse the resource library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			q := service.ResourceQuery{Kind: domain.ResourceKind(kind), Query: query, Tags: tags}
			page, err := render(ctx, func(ctx context.Context) (service.ResourcePage, error) {
				return c.app.catalog.Resources(ctx, q)
			})
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, page)
			}
			saved, err := c.app.bookmarks.IDs(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d items\nTags: %s\n", page.Kind, len(page.Items), joinOrDash(page.Tags))
			rows := make([][]string, len(page.Items))
			for i, r := range page.Items {
				b := r.Bookmark(c.app.now())
				rows[i] = []string{strings.TrimPrefix(b.ID, "resource-"), r.Title, joinOrDash(r.Tags), savedMark(saved[b.ID])}
			}
			return table(cmd.OutOrStdout(), "ID\tTITLE\tTAGS\tSAVED", rows)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(domain.ResourceKindArticles), "articles, ebooks, checklists or webinars")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search titles and descriptions")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Only show resources with one of these tags")
	return cmd
}

func (c *cli) storiesCmd() *cobra.Command {
	var storyDomain, query string
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "Read success stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stories, err := render(cmd.Context(), func(ctx context.Context) ([]domain.Story, error) {
				return c.app.catalog.Stories(ctx, storyDomain, query)
			})
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, stories)
			}
			out := cmd.OutOrStdout()
			for _, s := range stories {
				fmt.Fprintf(out, "#%d %s (%s)\n  %s\n", s.ID, s.Name, s.Domain, s.CurrentRole)
				for _, m := range s.KeyMilestones {
					fmt.Fprintf(out, "  - %s\n", m)
				}
				if s.Inspiration != "" {
					fmt.Fprintf(out, "  %q\n", s.Inspiration)
				}
			}
			fmt.Fprintf(out, "%d stories\n", len(stories))
			return nil
		},
	}
	cmd.Flags().StringVarP(&storyDomain, "domain", "d", service.StoryDomainAll, "all or one of: "+strings.Join(domain.StoryDomains, ", "))
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search names, roles and journeys")
	return cmd
}

func (c *cli) multimediaCmd() *cobra.Command {
	var q service.MediaQuery
	cmd := &cobra.Command{
		Use:   "multimedia",
		Short: "Browse career videos and podcasts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := render(cmd.Context(), func(ctx context.Context) ([]domain.MultimediaItem, error) {
				return c.app.catalog.Multimedia(ctx, q)
			})
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, items)
			}
			rows := make([][]string, len(items))
			for i, m := range items {
				rows[i] = []string{m.ID, m.Title, m.CategoryLabel(), m.Duration, m.Speaker}
			}
			return table(cmd.OutOrStdout(), "ID\tTITLE\tCATEGORY\tDURATION\tSPEAKER", rows)
		},
	}
	cmd.Flags().StringVarP(&q.Kind, "kind", "k", service.MediaVideos, "videos or podcasts")
	cmd.Flags().StringVarP(&q.Query, "query", "q", "", "Search titles, descriptions and speakers")
	cmd.Flags().StringVarP(&q.Category, "category", "c", "", strings.Join(domain.MultimediaCategories, ", "))
	cmd.Flags().StringVarP(&q.Audience, "audience", "a", "", strings.Join(domain.MultimediaAudiences, ", "))
	return cmd
}

func (c *cli) coachingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coaching",
		Short: "Interview, resume, stream selection and study abroad guides",
	}
	guide := func(use, short string, load func(ctx context.Context) (any, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				doc, err := render(cmd.Context(), load)
				if err != nil {
					return err
				}
				if c.jsonOutput {
					return c.printJSON(cmd, doc)
				}
				return printGuide(cmd, doc)
			},
		}
	}
	cmd.AddCommand(
		guide("interview-tips", "Interview preparation tips", func(ctx context.Context) (any, error) {
			return c.app.catalog.InterviewTips(ctx)
		}),
		guide("resume-guidelines", "Resume writing guidelines", func(ctx context.Context) (any, error) {
			return c.app.catalog.ResumeGuidelines(ctx)
		}),
		guide("stream-selection", "Choosing an academic stream", func(ctx context.Context) (any, error) {
			return c.app.catalog.StreamSelection(ctx)
		}),
		guide("study-abroad", "Studying abroad step by step", func(ctx context.Context) (any, error) {
			return c.app.catalog.StudyAbroad(ctx)
		}),
	)
	return cmd
}

// printGuide prints the title, description and section titles of a
// coaching document.
func printGuide(cmd *cobra.Command, doc any) error {
	var title, description string
	var sections []string
	switch g := doc.(type) {
	case domain.InterviewTips:
		title, description = g.Title, g.Description
		for _, s := range g.Sections {
			sections = append(sections, fmt.Sprintf("%s (%d tips)", s.Title, len(s.Tips)))
		}
	case domain.ResumeGuidelines:
		title, description = g.Title, g.Description
		for _, s := range g.Sections {
			sections = append(sections, s.Title)
		}
	case domain.StreamSelectionGuide:
		title, description = g.Title, g.Description
		for _, s := range g.Sections {
			sections = append(sections, fmt.Sprintf("%s: %s", s.Title, s.Description))
		}
	case domain.StudyAbroadGuide:
		title, description = g.Title, g.Description
		for _, s := range g.Sections {
			sections = append(sections, fmt.Sprintf("%s (%d steps)", s.Title, len(s.Steps)))
		}
	default:
		return fmt.Errorf("unsupported guide %T", doc)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n%s\n\n", title, description)
	for i, s := range sections {
		fmt.Fprintf(out, "%d. %s\n", i+1, s)
	}
	return nil
}

func (c *cli) contentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the content source",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load and validate every content document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := c.app.loader.Check(cmd.Context())
			failed := 0
			for _, r := range results {
				if !r.OK() {
					failed++
				}
			}
			if c.jsonOutput {
				if err := c.printJSON(cmd, results); err != nil {
					return err
				}
			} else {
				rows := make([][]string, len(results))
				for i, r := range results {
					status := "ok"
					if !r.OK() {
						status = r.Error
					}
					rows[i] = []string{string(r.Resource), r.File, strconv.Itoa(r.Bytes), status}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n", c.app.loader.Source())
				if err := table(cmd.OutOrStdout(), "RESOURCE\tFILE\tBYTES\tSTATUS", rows); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d content documents failed", failed, len(results))
			}
			return nil
		},
	})
	return cmd
}
