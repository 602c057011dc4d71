package repo

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a lookup matches zero records.
	ErrNotFound = errors.New("repo: record not found")

	// ErrInvalidField is returned when a field name is not a valid SQL
	// identifier. Field names come from code, not user input, so hitting
	// this indicates a wiring defect.
	ErrInvalidField = errors.New("repo: invalid field name")
)

// Repository is the persistence capability consumed by CRUD resources.
//
// dest arguments follow GORM conventions: a pointer to a struct for single
// records, a pointer to a slice for collections. Implementations populate
// relation fields eagerly so rendering can show related records without a
// second round trip.
type Repository interface {
	// List fills dest with all records matching the filters.
	// An empty filter map returns every record.
	List(ctx context.Context, dest any, filters map[string]any) error

	// GetByField fills dest with the single record whose field equals value.
	// Returns ErrNotFound when no record matches.
	GetByField(ctx context.Context, dest any, field string, value any) error

	// Save persists the record, inserting or updating as appropriate.
	Save(ctx context.Context, record any) error

	// Delete removes the record.
	Delete(ctx context.Context, record any) error
}
