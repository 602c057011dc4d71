package crud

import (
	"github.com/dmitrymomot/crud/internal"
	"github.com/dmitrymomot/crud/pkg/logger"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	// It manages HTTP routing, middleware, and graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// Component is the interface for renderable templates.
	Component = internal.Component

	// ValidationErrors is a collection of validation errors.
	ValidationErrors = internal.ValidationErrors

	// ResponseWriter wraps http.ResponseWriter with write tracking.
	ResponseWriter = internal.ResponseWriter

	// HTTPError represents an HTTP error with structured data for rendering.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// ContextExtractor extracts a slog attribute from context.
	// Used with the logger package to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor

	// Role identifies one of the five CRUD view kinds.
	Role = internal.Role

	// Converter constrains the record-identifying path segment to a type.
	Converter = internal.Converter

	// Config is the static, per-resource configuration.
	Config = internal.Config

	// Resource is a generic CRUD controller for one entity type.
	Resource = internal.Resource

	// ResourceOption configures a Resource.
	ResourceOption = internal.ResourceOption

	// RouteEntry is one generated route: a role bound to its URL pattern,
	// URL name, methods and handler.
	RouteEntry = internal.RouteEntry

	// TemplateData is the context handed to the built-in templates.
	TemplateData = internal.TemplateData
)

// Roles.
const (
	RoleList   = internal.RoleList
	RoleDetail = internal.RoleDetail
	RoleCreate = internal.RoleCreate
	RoleUpdate = internal.RoleUpdate
	RoleDelete = internal.RoleDelete
)

// Path converters.
const (
	ConverterInt  = internal.ConverterInt
	ConverterUUID = internal.ConverterUUID
	ConverterSlug = internal.ConverterSlug
	ConverterStr  = internal.ConverterStr
)

// AllRoles lists every role.
var AllRoles = internal.AllRoles

// Sentinel errors.
var (
	// ErrMisconfigured is returned when a resource configuration is invalid.
	ErrMisconfigured = internal.ErrMisconfigured

	// ErrObjectRequired is returned when Reverse needs a record but got nil.
	ErrObjectRequired = internal.ErrObjectRequired

	// ErrUnknownLookupField is returned when a record has no field matching
	// the configured lookup field.
	ErrUnknownLookupField = internal.ErrUnknownLookupField
)

// Constructors

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := crud.New(
//	    crud.WithResources(bookmarks),
//	    crud.WithMiddleware(middlewares.RequestID()),
//	)
//
//	err := app.Run(":8080", crud.Logger(log))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// NewResource creates a CRUD controller backed by the given repository.
var NewResource = internal.NewResource

// MustResource is like NewResource but panics on configuration errors.
var MustResource = internal.MustResource

// WithRenderer sets a custom template renderer on a Resource.
var WithRenderer = internal.WithRenderer

// URL generation

// URLPattern builds the route pattern for a role and configuration.
var URLPattern = internal.URLPattern

// URLName derives the route name: "{urlBase}-{role}".
var URLName = internal.URLName

// RoutesFor emits one unbound route entry per requested role, in canonical
// order (list, create, detail, update, delete).
var RoutesFor = internal.RoutesFor

// Reverse builds the canonical URL for a role, substituting the record's
// lookup-field value when the role requires an identifying segment.
var Reverse = internal.Reverse

// App options

var (
	// WithMiddleware appends global middleware.
	WithMiddleware = internal.WithMiddleware

	// WithHandlers registers route handlers.
	WithHandlers = internal.WithHandlers

	// WithResources registers CRUD resources.
	WithResources = internal.WithResources

	// WithErrorHandler sets a custom error handler.
	WithErrorHandler = internal.WithErrorHandler

	// WithNotFoundHandler sets a custom 404 handler.
	WithNotFoundHandler = internal.WithNotFoundHandler

	// WithMethodNotAllowedHandler sets a custom 405 handler.
	WithMethodNotAllowedHandler = internal.WithMethodNotAllowedHandler

	// WithLogger sets the application logger.
	WithLogger = internal.WithLogger

	// WithStaticFiles mounts a static file handler at the given pattern.
	WithStaticFiles = internal.WithStaticFiles

	// WithHealth enables liveness and readiness endpoints.
	WithHealth = internal.WithHealth

	// WithLivenessPath sets a custom liveness endpoint path.
	WithLivenessPath = internal.WithLivenessPath

	// WithReadinessPath sets a custom readiness endpoint path.
	WithReadinessPath = internal.WithReadinessPath

	// WithReadinessCheck adds a named readiness check.
	WithReadinessCheck = internal.WithReadinessCheck
)

// Run options

var (
	// Logger sets the server runtime logger.
	Logger = internal.Logger

	// ShutdownTimeout sets the timeout for graceful shutdown.
	ShutdownTimeout = internal.ShutdownTimeout

	// StartupHook registers a function to run before the server accepts
	// traffic.
	StartupHook = internal.StartupHook

	// ShutdownHook registers a cleanup function to run during shutdown.
	ShutdownHook = internal.ShutdownHook

	// WithContext sets a custom base context for signal handling.
	WithContext = internal.WithContext
)

// Errors

var (
	// NewHTTPError creates a new HTTPError with the given status code and
	// message.
	NewHTTPError = internal.NewHTTPError

	// WithDetail attaches an extended description to an HTTPError.
	WithDetail = internal.WithDetail

	// WithRequestID attaches the request tracking ID to an HTTPError.
	WithRequestID = internal.WithRequestID

	// WithError attaches the underlying error to an HTTPError.
	WithError = internal.WithError

	// ErrBadRequest creates a 400 error.
	ErrBadRequest = internal.ErrBadRequest

	// ErrNotFound creates a 404 error.
	ErrNotFound = internal.ErrNotFound

	// ErrMethodNotAllowed creates a 405 error.
	ErrMethodNotAllowed = internal.ErrMethodNotAllowed

	// ErrUnprocessable creates a 422 error.
	ErrUnprocessable = internal.ErrUnprocessable

	// ErrInternal creates a 500 error.
	ErrInternal = internal.ErrInternal

	// ErrServiceUnavailable creates a 503 error.
	ErrServiceUnavailable = internal.ErrServiceUnavailable

	// IsHTTPError reports whether err is an *HTTPError.
	IsHTTPError = internal.IsHTTPError

	// AsHTTPError extracts the HTTPError from an error chain.
	AsHTTPError = internal.AsHTTPError
)
