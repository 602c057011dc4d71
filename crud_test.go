package crud_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dmitrymomot/crud"
	"github.com/dmitrymomot/crud/pkg/repo"
)

type Bookmark struct {
	ID        int    `gorm:"primarykey"`
	URL       string `validate:"required"`
	Title     string `validate:"required"`
	Note      string
	Favourite bool
	Tags      []BookmarkTag `validate:"-"`
}

func (b Bookmark) String() string {
	return b.Title
}

type BookmarkTag struct {
	ID         int `gorm:"primarykey"`
	BookmarkID int
	Bookmark   Bookmark `validate:"-"`
	Tag        string   `validate:"required"`
}

func (t BookmarkTag) String() string {
	return t.Tag
}

type NamedCollection struct {
	ID   uuid.UUID `gorm:"type:uuid;primarykey"`
	Name string    `validate:"required"`
}

func (c NamedCollection) String() string {
	return c.Name
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repo.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Bookmark{}, &BookmarkTag{}, &NamedCollection{}))
	return db
}

func bookmarkApp(t *testing.T, db *gorm.DB) http.Handler {
	t.Helper()
	bookmarks := crud.MustResource(repo.NewGorm(db), crud.Config{
		Model:        Bookmark{},
		Fields:       []string{"url", "title", "note", "favourite", "tags"},
		FilterFields: []string{"favourite"},
	})
	return crud.New(crud.WithResources(bookmarks))
}

func get(app http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func postForm(app http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestBookmarkLifecycle(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	app := bookmarkApp(t, db)

	t.Run("empty list shows create affordance", func(t *testing.T) {
		rec := get(app, "/bookmark/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "There are no bookmarks. Create one now?")
		assert.Contains(t, rec.Body.String(), ">Add a new bookmark</a>")
	})

	t.Run("create persists and redirects to detail", func(t *testing.T) {
		rec := postForm(app, "/bookmark/new/", url.Values{
			"url":   {"https://example.com"},
			"title": {"Example Site"},
		})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/bookmark/1/", rec.Header().Get("Location"))

		var count int64
		require.NoError(t, db.Model(&Bookmark{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("invalid create persists nothing", func(t *testing.T) {
		rec := postForm(app, "/bookmark/new/", url.Values{
			"url": {"https://example.com"},
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "This field is required.")

		var count int64
		require.NoError(t, db.Model(&Bookmark{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("list renders the record", func(t *testing.T) {
		rec := get(app, "/bookmark/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Example Site")
		assert.Contains(t, rec.Body.String(), `<a href="/bookmark/1/">View</a>`)
	})

	t.Run("detail renders the record", func(t *testing.T) {
		rec := get(app, "/bookmark/1/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Example Site")
		assert.Contains(t, rec.Body.String(), "https://example.com")
	})

	t.Run("unknown record is 404", func(t *testing.T) {
		rec := get(app, "/bookmark/999/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update mutates in place", func(t *testing.T) {
		rec := postForm(app, "/bookmark/1/edit/", url.Values{
			"url":       {"https://example.com"},
			"title":     {"Renamed Site"},
			"favourite": {"true"},
		})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/bookmark/1/", rec.Header().Get("Location"))

		var b Bookmark
		require.NoError(t, db.First(&b, 1).Error)
		assert.Equal(t, "Renamed Site", b.Title)
		assert.True(t, b.Favourite)

		var count int64
		require.NoError(t, db.Model(&Bookmark{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("filter by whitelisted field", func(t *testing.T) {
		require.NoError(t, db.Create(&Bookmark{
			URL:   "https://go.dev",
			Title: "Go",
		}).Error)

		rec := get(app, "/bookmark/?favourite=true")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Renamed Site")
		assert.NotContains(t, rec.Body.String(), "Go</td>")
	})

	t.Run("delete removes the record and redirects to list", func(t *testing.T) {
		rec := get(app, "/bookmark/1/delete/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Are you sure")

		rec = postForm(app, "/bookmark/1/delete/", nil)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/bookmark/", rec.Header().Get("Location"))

		assert.Equal(t, http.StatusNotFound, get(app, "/bookmark/1/").Code)
	})
}

func TestRelationDisplay(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	require.NoError(t, db.Create(&Bookmark{
		URL:   "https://example.com",
		Title: "Example",
		Tags: []BookmarkTag{
			{Tag: "go"},
			{Tag: "web"},
		},
	}).Error)

	t.Run("many-valued relation shows all values", func(t *testing.T) {
		t.Parallel()
		app := bookmarkApp(t, db)
		rec := get(app, "/bookmark/1/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go, web")
	})

	t.Run("foreign key shows natural string", func(t *testing.T) {
		t.Parallel()
		tags := crud.MustResource(repo.NewGorm(db), crud.Config{
			Model:  BookmarkTag{},
			Fields: []string{"bookmark", "tag"},
		})
		app := crud.New(crud.WithResources(tags))

		rec := get(app, "/bookmarktag/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Example")
		assert.Contains(t, rec.Body.String(), "go")
	})
}

func TestNamedCollectionUUIDLookup(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	id := uuid.New()
	require.NoError(t, db.Create(&NamedCollection{ID: id, Name: "reading list"}).Error)

	collections := crud.MustResource(repo.NewGorm(db), crud.Config{
		Model:     NamedCollection{},
		Fields:    []string{"name"},
		URLBase:   "named_collections",
		Converter: crud.ConverterUUID,
	})
	app := crud.New(crud.WithResources(collections))

	t.Run("detail by uuid", func(t *testing.T) {
		rec := get(app, "/named_collections/"+id.String()+"/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "reading list")
	})

	t.Run("malformed uuid does not match", func(t *testing.T) {
		rec := get(app, "/named_collections/not-a-uuid/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update by uuid", func(t *testing.T) {
		rec := postForm(app, "/named_collections/"+id.String()+"/edit/", url.Values{
			"name": {"archive"},
		})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/named_collections/"+id.String()+"/", rec.Header().Get("Location"))

		var c NamedCollection
		require.NoError(t, db.First(&c, "id = ?", id).Error)
		assert.Equal(t, "archive", c.Name)
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	app := crud.New(
		crud.WithHealth(
			crud.WithReadinessCheck("db", repo.Healthcheck(db)),
		),
	)

	assert.Equal(t, http.StatusOK, get(app, "/health/live").Code)
	assert.Equal(t, http.StatusOK, get(app, "/health/ready").Code)
}
