package repo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// identRe accepts plain SQL identifiers. Filter and lookup field names are
// interpolated into WHERE clauses, so anything else is rejected outright.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Gorm implements Repository on top of a *gorm.DB.
type Gorm struct {
	db *gorm.DB
}

// NewGorm creates a GORM-backed repository.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// DB exposes the underlying handle for migrations and advanced queries.
func (r *Gorm) DB() *gorm.DB {
	return r.db
}

func (r *Gorm) List(ctx context.Context, dest any, filters map[string]any) error {
	q := r.db.WithContext(ctx).Preload(clause.Associations)
	for field, value := range filters {
		if !identRe.MatchString(field) {
			return fmt.Errorf("%w: %q", ErrInvalidField, field)
		}
		q = q.Where(fmt.Sprintf("%s = ?", field), value)
	}
	if err := q.Find(dest).Error; err != nil {
		return fmt.Errorf("list records: %w", err)
	}
	return nil
}

func (r *Gorm) GetByField(ctx context.Context, dest any, field string, value any) error {
	if !identRe.MatchString(field) {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	err := r.db.WithContext(ctx).
		Preload(clause.Associations).
		Where(fmt.Sprintf("%s = ?", field), value).
		First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get record by %s: %w", field, err)
	}
	return nil
}

func (r *Gorm) Save(ctx context.Context, record any) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

func (r *Gorm) Delete(ctx context.Context, record any) error {
	if err := r.db.WithContext(ctx).Delete(record).Error; err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
