// Package homepage is a small personal website server: markdown content
// pages, a dark-mode preference and a dismissible privacy notice kept in
// cookies, and a text toolbox (number base conversion, Base64, Caesar cipher)
// served as htmx fragments, a JSON API and a CLI.
//
// The package re-exports the framework core: an App built from options,
// handlers that declare routes, and a Context that carries the request, the
// response, the cookie jar and the visitor's preferences.
//
// # Quick Start
//
//	library := pages.New(assets.Content, pages.WithDir(assets.ContentDir))
//	layout := views.NewLayout(views.WithSiteTitle("Homepage"))
//
//	app := homepage.New(
//	    homepage.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.Preferences(),
//	    ),
//	    homepage.WithStaticFiles("/static/", assets.Static, assets.StaticDir),
//	    homepage.WithHandlers(
//	        handlers.NewPages(library, layout),
//	        handlers.NewPreferences(layout),
//	        handlers.NewToolbox(layout, handlers.DefaultToolbox()),
//	        handlers.NewToolboxAPI(handlers.DefaultToolbox()),
//	    ),
//	    homepage.WithErrorHandler(handlers.ErrorHandler(layout)),
//	)
//
//	if err := app.Run(":8080", homepage.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	func (h *Toolbox) Routes(r homepage.Router) {
//	    r.Route("/toolbox", func(r homepage.Router) {
//	        r.GET("/", h.index)
//	        r.POST("/shift", h.shift)
//	    })
//	}
//
// # Shutdown
//
// The server handles SIGINT/SIGTERM for graceful shutdown. Register cleanup
// functions with [ShutdownHook].
//
// # Escape Hatch
//
// For advanced use cases requiring raw chi router access, use App.Router().
package homepage
