package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"career-passport/internal/domain"
	"career-passport/internal/dto"
	"career-passport/internal/search"
	"career-passport/internal/service"

	"github.com/spf13/cobra"
)

// bookmarkFilter is the filter state of the bookmark manager.
type bookmarkFilter struct {
	query string
	types []string
	tags  []string
}

func (f *bookmarkFilter) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Search titles, descriptions, notes and tags")
	cmd.Flags().StringSliceVar(&f.types, "type", nil, "Bookmark types: career, resource, story, multimedia")
	cmd.Flags().StringSliceVarP(&f.tags, "tag", "t", nil, "Only bookmarks with one of these tags")
}

func (f *bookmarkFilter) criteria() search.Criteria {
	return search.Criteria{Query: f.query, Categories: f.types, Tags: f.tags}
}

func (c *cli) bookmarksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmarks",
		Aliases: []string{"bm"},
		Short:   "Manage saved careers, resources, stories and media",
	}
	cmd.AddCommand(
		c.bookmarksListCmd(),
		c.bookmarksAddCmd(),
		c.bookmarksEditCmd(),
		c.bookmarksRemoveCmd(),
		c.bookmarksToggleCmd(),
		c.bookmarksExportCmd(),
		c.bookmarksShareCmd(),
	)
	return cmd
}

func (c *cli) bookmarksListCmd() *cobra.Command {
	var f bookmarkFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bookmarks, err := c.app.bookmarks.List(cmd.Context(), f.criteria())
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, bookmarks)
			}
			rows := make([][]string, len(bookmarks))
			for i, b := range bookmarks {
				rows[i] = []string{b.ID, b.Title, string(b.Type), b.DateAdded, joinOrDash(b.Tags)}
			}
			return table(cmd.OutOrStdout(), "ID\tTITLE\tTYPE\tADDED\tTAGS", rows)
		},
	}
	f.register(cmd)
	return cmd
}

func (c *cli) bookmarksAddCmd() *cobra.Command {
	var (
		in   domain.NewBookmarkInput
		kind string
		tags string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom bookmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Type = domain.BookmarkType(kind)
			in.Tags = splitList(tags)
			b, err := c.app.bookmarks.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, b)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", b.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&kind, "type", string(domain.BookmarkTypeResource), "career, resource, story or multimedia")
	cmd.Flags().StringVar(&in.Category, "category", "", "Category")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description (required)")
	cmd.Flags().StringVar(&in.URL, "url", "", "Link")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Personal notes")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags")
	return cmd
}

func (c *cli) bookmarksEditCmd() *cobra.Command {
	var (
		title, category, description, url, notes, tags string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a bookmark; only the given fields change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := c.app.bookmarks.Get(ctx, args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("title") {
				b.Title = title
			}
			if flags.Changed("category") {
				b.Category = category
			}
			if flags.Changed("description") {
				b.Description = description
			}
			if flags.Changed("url") {
				b.URL = url
			}
			if flags.Changed("notes") {
				b.Notes = notes
			}
			if flags.Changed("tags") {
				b.Tags = splitList(tags)
			}
			if err := c.app.bookmarks.Update(ctx, b); err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, b)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", b.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&url, "url", "", "Link")
	cmd.Flags().StringVar(&notes, "notes", "", "Personal notes")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags, replacing the current ones")
	return cmd
}

func (c *cli) bookmarksRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove"},
		Short:   "Remove bookmarks",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range args {
				if err := c.app.bookmarks.Remove(cmd.Context(), id); err != nil {
					return err
				}
			}
			if !c.jsonOutput {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d bookmark(s)\n", len(args))
			}
			return nil
		},
	}
}

func (c *cli) bookmarksToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Save or unsave a content item, e.g. career-3, resource-articles-2, story-1, multimedia-v4",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			// Resolve the item before toggling so an unknown id never
			// removes or adds anything.
			saved, err := c.app.bookmarks.Contains(ctx, id)
			if err != nil {
				return err
			}
			var item domain.Bookmark
			if !saved {
				item, err = render(ctx, func(ctx context.Context) (domain.Bookmark, error) {
					return c.resolveBookmark(ctx, id)
				})
				if err != nil {
					return err
				}
			}

			present, err := c.app.bookmarks.Toggle(ctx, id, func() domain.Bookmark { return item })
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, map[string]any{"id": id, "bookmarked": present})
			}
			if present {
				fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %s\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed bookmark %s\n", id)
			}
			return nil
		},
	}
}

// resolveBookmark builds the bookmark for a "{type}-{sourceId}" id from
// the content it points at.
func (c *cli) resolveBookmark(ctx context.Context, id string) (domain.Bookmark, error) {
	kind, sourceID, ok := strings.Cut(id, "-")
	if !ok || sourceID == "" {
		return domain.Bookmark{}, domain.NewInvalidInputError("bookmark id must look like {type}-{id}: " + id)
	}
	now := c.app.now()
	notFound := domain.NewNotFoundError("no content item for " + id)

	switch domain.BookmarkType(kind) {
	case domain.BookmarkTypeCareer:
		careers, err := c.app.catalog.Careers(ctx, service.CareerQuery{})
		if err != nil {
			return domain.Bookmark{}, err
		}
		for _, cr := range careers {
			if strconv.Itoa(cr.ID) == sourceID {
				return cr.Bookmark(now), nil
			}
		}
	case domain.BookmarkTypeResource:
		resourceKind, _, _ := strings.Cut(sourceID, "-")
		page, err := c.app.catalog.Resources(ctx, service.ResourceQuery{Kind: domain.ResourceKind(resourceKind)})
		if err != nil {
			return domain.Bookmark{}, err
		}
		for _, r := range page.Items {
			if b := r.Bookmark(now); b.ID == id {
				return b, nil
			}
		}
	case domain.BookmarkTypeStory:
		stories, err := c.app.catalog.Stories(ctx, service.StoryDomainAll, "")
		if err != nil {
			return domain.Bookmark{}, err
		}
		for _, s := range stories {
			if strconv.Itoa(s.ID) == sourceID {
				return s.Bookmark(now), nil
			}
		}
	case domain.BookmarkTypeMultimedia:
		for _, tab := range []string{service.MediaVideos, service.MediaPodcasts} {
			items, err := c.app.catalog.Multimedia(ctx, service.MediaQuery{Kind: tab})
			if err != nil {
				return domain.Bookmark{}, err
			}
			for _, m := range items {
				if m.ID == sourceID {
					return m.Bookmark(now), nil
				}
			}
		}
	default:
		return domain.Bookmark{}, domain.NewInvalidInputError("unknown bookmark type: " + kind)
	}
	return domain.Bookmark{}, notFound
}

func (c *cli) bookmarksExportCmd() *cobra.Command {
	var (
		f      bookmarkFilter
		dir    string
		stdout bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the listed bookmarks as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bookmarks, err := c.app.bookmarks.List(cmd.Context(), f.criteria())
			if err != nil {
				return err
			}
			csv := service.ExportCSV(bookmarks)
			name := service.ExportFileName(c.app.now())

			if c.jsonOutput {
				return c.printJSON(cmd, dto.BookmarkExport{FileName: name, Count: len(bookmarks), CSV: csv})
			}
			if stdout {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), csv)
				return err
			}

			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookmark(s) to %s\n", len(bookmarks), path)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&dir, "dir", "o", ".", "Directory to write the CSV file to")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the CSV instead of writing a file")
	return cmd
}

func (c *cli) bookmarksShareCmd() *cobra.Command {
	var (
		f        bookmarkFilter
		platform string
	)
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print share links for the listed bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bookmarks, err := c.app.bookmarks.List(cmd.Context(), f.criteria())
			if err != nil {
				return err
			}
			links := service.NewShareLinks(len(bookmarks), c.app.cfg.App.Origin)

			if platform != "" {
				link, ok := links.Platform(platform)
				if !ok {
					return domain.NewInvalidInputError("unknown platform: " + platform)
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), link)
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, links)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, service.ShareMessage(len(bookmarks)))
			fmt.Fprintf(out, "Twitter:  %s\nFacebook: %s\nLinkedIn: %s\n", links.Twitter, links.Facebook, links.LinkedIn)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "twitter, facebook or linkedin")
	return cmd
}
