package internal

// Handler declares routes on a router.
//
// Example:
//
//	type PagesHandler struct{}
//
//	func (h *PagesHandler) Routes(r crud.Router) {
//	    r.GET("/about", h.showAbout)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error triggers the error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect the request, short-circuit processing, or wrap
// the response.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
