// Package binder populates struct fields from submitted form data.
//
// Fields are matched by their `form` tag, falling back to a relaxed
// comparison of the Go field name (case- and underscore-insensitive), so a
// form key "telegram_id" binds to a TelegramID field without extra tags.
// Binding is non-destructive: form keys that are absent from the request
// leave the corresponding struct fields untouched, which makes the package
// safe for partial updates against an already-loaded record.
package binder
