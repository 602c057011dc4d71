// Package middlewares provides HTTP middleware for crud applications.
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing. It reuses an
// incoming header ID when present, otherwise generates a UUID.
//
//	app := crud.New(
//	    crud.WithMiddleware(middlewares.RequestID()),
//	)
//
// Use RequestIDExtractor() with the logger package to stamp request_id on
// every log entry:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover catches panics and converts them to typed errors handled by the
// global ErrorHandler.
//
//	app := crud.New(
//	    crud.WithMiddleware(middlewares.Recover()),
//	    crud.WithErrorHandler(func(c crud.Context, err error) error {
//	        if middlewares.IsPanicError(err) {
//	            return c.Error(500, "Internal Server Error")
//	        }
//	        return c.Error(500, err.Error())
//	    }),
//	)
package middlewares
