package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/homepage"
	"github.com/dmitrymomot/homepage/middlewares"
	"github.com/dmitrymomot/homepage/pkg/config"
	"github.com/dmitrymomot/homepage/pkg/cookie"
	"github.com/dmitrymomot/homepage/pkg/logger"
	"github.com/dmitrymomot/homepage/pkg/pages"
	"github.com/dmitrymomot/homepage/site/assets"
	"github.com/dmitrymomot/homepage/site/handlers"
	"github.com/dmitrymomot/homepage/site/views"
)

// site is the assembled application.
type site struct {
	app     *homepage.App
	library *pages.Library
}

// contentFS returns the configured content directory or the embedded pages.
func contentFS(cfg *config.Config) (fs.FS, string) {
	if cfg.Site.ContentDir != "" {
		return os.DirFS(cfg.Site.ContentDir), "."
	}
	return assets.Content, assets.ContentDir
}

func newLibrary(cfg *config.Config, log *slog.Logger) *pages.Library {
	fsys, dir := contentFS(cfg)
	return pages.New(fsys,
		pages.WithDir(dir),
		pages.WithTTL(cfg.Site.CacheTTL),
		pages.WithLogger(log.With("component", "pages")),
	)
}

// newSite wires configuration, content, views and handlers into an App.
func newSite(cfg *config.Config, log *slog.Logger) (*site, error) {
	library := newLibrary(cfg, log)

	nav, err := library.Nav()
	if err != nil {
		return nil, errors.Join(err, library.Close())
	}

	layout := views.NewLayout(
		views.WithSiteTitle(cfg.Site.Title),
		views.WithStaticBase(cfg.Site.StaticBase),
		views.WithScript(cfg.Site.Script),
		views.WithNotice(cfg.Site.PrivacyNotice),
		views.WithNav(nav),
	)

	defaults := handlers.ToolboxDefaults{
		FromRadix:   cfg.Toolbox.FromRadix,
		ToRadix:     cfg.Toolbox.ToRadix,
		CaesarShift: cfg.Toolbox.CaesarShift,
	}

	app := homepage.New(
		homepage.WithCustomLogger(log),
		homepage.WithHTTPMiddleware(
			middleware.RedirectSlashes,
			middleware.Compress(5, "text/html", "text/css", "application/json"),
		),
		homepage.WithMiddleware(
			middlewares.Recover(),
			middlewares.RequestID(),
			middlewares.RequestLog(),
			middlewares.Timeout(cfg.Server.RequestTimeout),
			middlewares.Preferences(),
		),
		homepage.WithCookieOptions(
			cookie.WithDomain(cfg.Cookies.Domain),
			cookie.WithSecure(cfg.Cookies.Secure),
			cookie.WithSameSite(cfg.Cookies.SameSiteMode()),
		),
		homepage.WithStaticFiles(cfg.Site.StaticBase+"/", assets.Static, assets.StaticDir),
		homepage.WithErrorHandler(handlers.ErrorHandler(layout)),
		homepage.WithNotFoundHandler(handlers.NotFound),
		homepage.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		homepage.WithHealthChecks(
			homepage.WithReadinessCheck("pages", library.Check),
		),
		homepage.WithHandlers(
			handlers.NewPreferences(layout),
			handlers.NewToolbox(layout, defaults),
			handlers.NewToolboxAPI(defaults, middlewares.WithAllowOrigins(cfg.Server.CORSOrigins...)),
			handlers.NewPages(library, layout),
		),
	)

	return &site{app: app, library: library}, nil
}

// newLogger builds the process logger from configuration.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	log, err := logger.NewWithConfig(os.Stdout, cfg.Log, middlewares.RequestIDExtractor())
	if err != nil {
		return nil, err
	}
	return log.With("component", "homepage"), nil
}

// shutdown releases the page cache and flushes Sentry.
func (s *site) shutdown(timeout time.Duration) func(context.Context) error {
	return func(context.Context) error {
		logger.Flush(timeout)
		return s.library.Close()
	}
}
