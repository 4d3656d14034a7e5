package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"career-passport/internal/config"
	"career-passport/internal/content"
	"career-passport/internal/logger"
	"career-passport/internal/service"
	"career-passport/internal/storage"
	"career-passport/internal/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// application holds everything a command needs.
type application struct {
	cfg       *config.Config
	loader    *content.Loader
	store     *storage.Store
	bookmarks service.BookmarkService
	catalog   service.CatalogService
	quiz      service.QuizService
	visits    service.VisitService
	feedback  service.FeedbackService
	now       func() time.Time
}

func newApplication(cfg *config.Config, loader *content.Loader, store *storage.Store) *application {
	v := validation.New()
	return &application{
		cfg:       cfg,
		loader:    loader,
		store:     store,
		bookmarks: service.NewBookmarkService(store, v),
		catalog:   service.NewCatalogService(loader),
		quiz:      service.NewQuizService(loader),
		visits:    service.NewVisitService(store),
		feedback:  service.NewFeedbackService(v, cfg.Feedback.SubmitDelay),
		now:       time.Now,
	}
}

// openApplication connects the configured content source and local store.
func openApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	source, err := content.NewSource(ctx, cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create content source: %w", err)
	}
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	logger.Get().Debug("Application ready",
		zap.String("content", source.String()),
		zap.String("storage", store.Driver))
	return newApplication(cfg, content.NewLoader(source), store), nil
}

func (a *application) Close() error {
	return a.store.Close()
}

// cli is the state shared by the command tree. app is built lazily before
// the first command runs unless a test has set it already.
type cli struct {
	app        *application
	owned      bool
	jsonOutput bool
	configFile string
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if c.app != nil {
		return nil
	}
	if c.configFile != "" {
		os.Setenv("PASSPORT_CONFIG", c.configFile)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return err
	}
	app, err := openApplication(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	c.app, c.owned = app, true
	return nil
}

func (c *cli) teardown(*cobra.Command, []string) error {
	defer logger.Sync()
	if !c.owned {
		return nil
	}
	return c.app.Close()
}

// render runs fetch as a task of a fresh page mount and waits for it.
// Interrupting the command unmounts the page and discards the result.
func render[T any](ctx context.Context, fetch func(ctx context.Context) (T, error)) (T, error) {
	m := content.NewMount(ctx)
	defer m.Unmount()
	return content.Start(m, fetch, nil).Wait(ctx)
}
