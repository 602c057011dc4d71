package internal

import (
	"log/slog"
	"net/http"
)

// Option configures an App during construction.
type Option func(*App)

// WithMiddleware appends global middleware, applied to every route in
// registration order.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers route handlers.
func WithHandlers(handlers ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, handlers...)
	}
}

// WithResources registers CRUD resources. Each resource contributes its
// generated route table.
func WithResources(resources ...*Resource) Option {
	return func(a *App) {
		a.resources = append(a.resources, resources...)
	}
}

// WithErrorHandler sets a custom handler for errors returned by handlers.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		if h != nil {
			a.notFoundHandler = h
		}
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		if h != nil {
			a.methodNotAllowedHandler = h
		}
	}
}

// WithLogger sets the application logger used by request contexts and the
// default error handler. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithStaticFiles mounts a static file handler at the given pattern.
//
// Example:
//
//	crud.WithStaticFiles("/static/*", http.FileServer(http.Dir("static")))
func WithStaticFiles(pattern string, h http.Handler) Option {
	return func(a *App) {
		if pattern != "" && h != nil {
			a.staticRoutes = append(a.staticRoutes, staticRoute{pattern: pattern, handler: h})
		}
	}
}

// WithHealth enables liveness and readiness endpoints.
//
// Example:
//
//	crud.WithHealth(
//	    crud.WithReadinessCheck("db", repo.Healthcheck(db)),
//	)
func WithHealth(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}
