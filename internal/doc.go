// Package internal contains the core implementation of the crud framework.
//
// The public API is exposed through the root crud package via type aliases.
// This package is internal to prevent direct imports and allow refactoring
// without breaking the public API.
package internal
