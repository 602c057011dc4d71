package internal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID    int
	Title string
	Tags  []noteTag
}

type noteTag struct {
	Name string
}

func (t noteTag) String() string {
	return t.Name
}

func TestConfigNormalized(t *testing.T) {
	t.Parallel()

	cfg := Config{Model: note{}, Fields: []string{"title"}}.normalized()

	assert.Equal(t, "note", cfg.URLBase)
	assert.Equal(t, "id", cfg.LookupField)
	assert.Equal(t, "pk", cfg.LookupParam)
	assert.Equal(t, ConverterInt, cfg.Converter)
	assert.Equal(t, AllRoles, cfg.Roles)

	custom := Config{
		Model:       note{},
		Fields:      []string{"title"},
		URLBase:     "notes",
		LookupField: "title",
		LookupParam: "slug",
		Roles:       []Role{RoleList},
	}.normalized()

	assert.Equal(t, "notes", custom.URLBase)
	assert.Equal(t, "title", custom.LookupField)
	assert.Equal(t, "slug", custom.LookupParam)
	assert.Equal(t, []Role{RoleList}, custom.Roles)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Model: note{}, Fields: []string{"title"}}, false},
		{"pointer model", Config{Model: &note{}, Fields: []string{"title"}}, false},
		{"nil model", Config{Fields: []string{"title"}}, true},
		{"non-struct model", Config{Model: 42, Fields: []string{"title"}}, true},
		{"no fields", Config{Model: note{}}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMisconfigured)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettingsFor(t *testing.T) {
	t.Parallel()

	cfg := Config{Model: note{}, Fields: []string{"title"}}

	t.Run("role defaults", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "_list", settingsFor(RoleList, cfg).templateSuffix)
		assert.Equal(t, "_detail", settingsFor(RoleDetail, cfg).templateSuffix)
		assert.Equal(t, "_form", settingsFor(RoleCreate, cfg).templateSuffix)
		assert.Equal(t, "_form", settingsFor(RoleUpdate, cfg).templateSuffix)
		assert.Equal(t, "_confirm_delete", settingsFor(RoleDelete, cfg).templateSuffix)
	})

	t.Run("explicit override wins", func(t *testing.T) {
		t.Parallel()
		custom := cfg
		custom.TemplateSuffix = "_custom"
		assert.Equal(t, "_custom", settingsFor(RoleList, custom).templateSuffix)
		assert.Equal(t, "_custom", settingsFor(RoleDelete, custom).templateSuffix)
	})
}

func TestConverterParse(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()
		v, err := ConverterInt.Parse("42")
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		_, err = ConverterInt.Parse("nope")
		assert.Error(t, err)
	})

	t.Run("uuid", func(t *testing.T) {
		t.Parallel()
		id := uuid.New()
		v, err := ConverterUUID.Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, v)

		_, err = ConverterUUID.Parse("not-a-uuid")
		assert.Error(t, err)
	})

	t.Run("slug and str pass through", func(t *testing.T) {
		t.Parallel()
		v, err := ConverterSlug.Parse("hello-world")
		require.NoError(t, err)
		assert.Equal(t, "hello-world", v)

		v, err = ConverterStr.Parse("anything at all")
		require.NoError(t, err)
		assert.Equal(t, "anything at all", v)
	})
}
