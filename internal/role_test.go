package internal_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/crud/internal"
)

type bookmark struct {
	ID        int
	URL       string `validate:"required"`
	Title     string `validate:"required"`
	Favourite bool
}

func (b bookmark) String() string {
	return b.Title
}

func TestURLPattern(t *testing.T) {
	t.Parallel()

	cfg := internal.Config{Model: bookmark{}, Fields: []string{"url", "title"}}

	tests := []struct {
		name string
		role internal.Role
		cfg  internal.Config
		want string
	}{
		{"list", internal.RoleList, cfg, "/bookmark/"},
		{"create", internal.RoleCreate, cfg, "/bookmark/new/"},
		{"detail", internal.RoleDetail, cfg, "/bookmark/{pk:[0-9]+}/"},
		{"update", internal.RoleUpdate, cfg, "/bookmark/{pk:[0-9]+}/edit/"},
		{"delete", internal.RoleDelete, cfg, "/bookmark/{pk:[0-9]+}/delete/"},
		{
			"custom url base",
			internal.RoleList,
			internal.Config{Model: bookmark{}, URLBase: "links"},
			"/links/",
		},
		{
			"custom lookup param",
			internal.RoleDetail,
			internal.Config{Model: bookmark{}, LookupParam: "slug", Converter: internal.ConverterSlug},
			"/bookmark/{slug:[-a-zA-Z0-9_]+}/",
		},
		{
			"uuid converter",
			internal.RoleDetail,
			internal.Config{Model: bookmark{}, Converter: internal.ConverterUUID},
			"/bookmark/{pk:[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}}/",
		},
		{
			"str converter",
			internal.RoleDetail,
			internal.Config{Model: bookmark{}, Converter: internal.ConverterStr},
			"/bookmark/{pk}/",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, internal.URLPattern(tt.role, tt.cfg))
		})
	}
}

func TestURLName(t *testing.T) {
	t.Parallel()

	cfg := internal.Config{Model: bookmark{}, Fields: []string{"url"}}
	assert.Equal(t, "bookmark-list", internal.URLName(internal.RoleList, cfg))
	assert.Equal(t, "bookmark-detail", internal.URLName(internal.RoleDetail, cfg))

	custom := internal.Config{Model: bookmark{}, URLBase: "named_collections"}
	assert.Equal(t, "named_collections-create", internal.URLName(internal.RoleCreate, custom))
}

func TestRoutesFor(t *testing.T) {
	t.Parallel()

	cfg := internal.Config{Model: bookmark{}, Fields: []string{"url", "title"}}

	t.Run("all roles in canonical order", func(t *testing.T) {
		t.Parallel()
		entries := internal.RoutesFor(cfg)
		require.Len(t, entries, 5)

		want := []internal.Role{
			internal.RoleList,
			internal.RoleCreate,
			internal.RoleDetail,
			internal.RoleUpdate,
			internal.RoleDelete,
		}
		for i, entry := range entries {
			assert.Equal(t, want[i], entry.Role)
		}
	})

	t.Run("create precedes detail for permissive converters", func(t *testing.T) {
		t.Parallel()
		slugCfg := cfg
		slugCfg.Converter = internal.ConverterSlug

		entries := internal.RoutesFor(slugCfg, internal.RoleDetail, internal.RoleCreate)
		require.Len(t, entries, 2)
		assert.Equal(t, internal.RoleCreate, entries[0].Role)
		assert.Equal(t, "/bookmark/new/", entries[0].Pattern)
		assert.Equal(t, internal.RoleDetail, entries[1].Role)
	})

	t.Run("subset returns one entry per role", func(t *testing.T) {
		t.Parallel()
		entries := internal.RoutesFor(cfg, internal.RoleDelete, internal.RoleList)
		require.Len(t, entries, 2)
		assert.Equal(t, internal.RoleList, entries[0].Role)
		assert.Equal(t, internal.RoleDelete, entries[1].Role)
	})

	t.Run("methods per role", func(t *testing.T) {
		t.Parallel()
		entries := internal.RoutesFor(cfg)
		assert.Equal(t, []string{http.MethodGet}, entries[0].Methods)
		assert.Equal(t, []string{http.MethodGet, http.MethodPost}, entries[1].Methods)
	})

	t.Run("handlers are unbound", func(t *testing.T) {
		t.Parallel()
		for _, entry := range internal.RoutesFor(cfg) {
			assert.Nil(t, entry.Handler)
		}
	})
}

func TestReverse(t *testing.T) {
	t.Parallel()

	cfg := internal.Config{Model: bookmark{}, Fields: []string{"url", "title"}}
	record := &bookmark{ID: 42, Title: "Example"}

	t.Run("static roles need no record", func(t *testing.T) {
		t.Parallel()
		url, err := internal.Reverse(internal.RoleList, cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, "/bookmark/", url)

		url, err = internal.Reverse(internal.RoleCreate, cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, "/bookmark/new/", url)
	})

	t.Run("identifying roles substitute the lookup value", func(t *testing.T) {
		t.Parallel()
		url, err := internal.Reverse(internal.RoleDetail, cfg, record)
		require.NoError(t, err)
		assert.Equal(t, "/bookmark/42/", url)

		url, err = internal.Reverse(internal.RoleUpdate, cfg, record)
		require.NoError(t, err)
		assert.Equal(t, "/bookmark/42/edit/", url)

		url, err = internal.Reverse(internal.RoleDelete, cfg, record)
		require.NoError(t, err)
		assert.Equal(t, "/bookmark/42/delete/", url)
	})

	t.Run("missing record", func(t *testing.T) {
		t.Parallel()
		_, err := internal.Reverse(internal.RoleDetail, cfg, nil)
		assert.ErrorIs(t, err, internal.ErrObjectRequired)
	})

	t.Run("unknown lookup field", func(t *testing.T) {
		t.Parallel()
		bad := cfg
		bad.LookupField = "nope"
		_, err := internal.Reverse(internal.RoleDetail, bad, record)
		assert.ErrorIs(t, err, internal.ErrUnknownLookupField)
	})

	t.Run("custom lookup field", func(t *testing.T) {
		t.Parallel()
		byTitle := cfg
		byTitle.LookupField = "title"
		byTitle.Converter = internal.ConverterStr
		url, err := internal.Reverse(internal.RoleDetail, byTitle, record)
		require.NoError(t, err)
		assert.Equal(t, "/bookmark/Example/", url)
	})
}
