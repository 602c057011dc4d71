package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/crud/pkg/repo"
)

type note struct {
	ID        uint `gorm:"primarykey"`
	Title     string
	Body      string
	Favourite bool
	Tags      []noteTag
}

type noteTag struct {
	ID     uint `gorm:"primarykey"`
	NoteID uint
	Label  string
}

func newRepo(t *testing.T) *repo.Gorm {
	t.Helper()
	db, err := repo.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&note{}, &noteTag{}))
	return repo.NewGorm(db)
}

func TestGormSave(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	n := &note{Title: "first"}
	require.NoError(t, r.Save(ctx, n))
	assert.NotZero(t, n.ID, "insert must assign a primary key")

	n.Title = "renamed"
	require.NoError(t, r.Save(ctx, n))

	var got note
	require.NoError(t, r.GetByField(ctx, &got, "id", n.ID))
	assert.Equal(t, "renamed", got.Title)

	var all []note
	require.NoError(t, r.List(ctx, &all, nil))
	assert.Len(t, all, 1, "update must not create a second record")
}

func TestGormGetByField(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &note{Title: "findable", Body: "by title"}))

	t.Run("found", func(t *testing.T) {
		var got note
		require.NoError(t, r.GetByField(ctx, &got, "title", "findable"))
		assert.Equal(t, "by title", got.Body)
	})

	t.Run("not found", func(t *testing.T) {
		var got note
		err := r.GetByField(ctx, &got, "title", "missing")
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("invalid field rejected", func(t *testing.T) {
		var got note
		err := r.GetByField(ctx, &got, "title; DROP TABLE notes", "x")
		assert.ErrorIs(t, err, repo.ErrInvalidField)
	})
}

func TestGormList(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &note{Title: "a", Favourite: true}))
	require.NoError(t, r.Save(ctx, &note{Title: "b"}))
	require.NoError(t, r.Save(ctx, &note{Title: "c"}))

	t.Run("all records", func(t *testing.T) {
		var all []note
		require.NoError(t, r.List(ctx, &all, nil))
		assert.Len(t, all, 3)
	})

	t.Run("filtered", func(t *testing.T) {
		var favs []note
		require.NoError(t, r.List(ctx, &favs, map[string]any{"favourite": true}))
		require.Len(t, favs, 1)
		assert.Equal(t, "a", favs[0].Title)
	})

	t.Run("invalid filter field rejected", func(t *testing.T) {
		var out []note
		err := r.List(ctx, &out, map[string]any{"favourite = 1 OR 1": true})
		assert.ErrorIs(t, err, repo.ErrInvalidField)
	})
}

func TestGormListPreloadsAssociations(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	n := &note{Title: "tagged"}
	require.NoError(t, r.Save(ctx, n))
	require.NoError(t, r.Save(ctx, &noteTag{NoteID: n.ID, Label: "go"}))
	require.NoError(t, r.Save(ctx, &noteTag{NoteID: n.ID, Label: "web"}))

	var got note
	require.NoError(t, r.GetByField(ctx, &got, "id", n.ID))
	assert.Len(t, got.Tags, 2)
}

func TestGormDelete(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	n := &note{Title: "doomed"}
	require.NoError(t, r.Save(ctx, n))
	require.NoError(t, r.Delete(ctx, n))

	var got note
	err := r.GetByField(ctx, &got, "id", n.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
