package internal

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Converter constrains the record-identifying path segment to a type.
// It contributes the regex used in the route pattern and parses the raw
// segment into the typed value handed to the persistence layer.
type Converter int

const (
	// ConverterInt matches decimal digits and parses to int.
	ConverterInt Converter = iota
	// ConverterUUID matches canonical UUID form and parses to uuid.UUID.
	ConverterUUID
	// ConverterSlug matches letters, digits, hyphens and underscores.
	ConverterSlug
	// ConverterStr matches any non-empty segment.
	ConverterStr
)

const uuidPattern = "[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}"

// Segment returns the chi path placeholder for the given parameter name.
func (c Converter) Segment(param string) string {
	switch c {
	case ConverterInt:
		return "{" + param + ":[0-9]+}"
	case ConverterUUID:
		return "{" + param + ":" + uuidPattern + "}"
	case ConverterSlug:
		return "{" + param + ":[-a-zA-Z0-9_]+}"
	default:
		return "{" + param + "}"
	}
}

// Parse converts the raw path segment into the typed lookup value.
func (c Converter) Parse(raw string) (any, error) {
	switch c {
	case ConverterInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse int segment %q: %w", raw, err)
		}
		return n, nil
	case ConverterUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse uuid segment %q: %w", raw, err)
		}
		return id, nil
	default:
		return raw, nil
	}
}

// Config is the static, per-resource configuration. It is normalized once
// at resource construction and shared read-only across all requests.
//
// Model and Fields are required; everything else has a default.
type Config struct {
	// Model is a prototype value of the target entity type, e.g. Bookmark{}.
	Model any

	// Fields lists the fields shown in list and detail views and bound in
	// forms, in display order. Names are matched against struct fields
	// case-insensitively, ignoring underscores.
	Fields []string

	// FilterFields whitelists fields usable as list query filters.
	FilterFields []string

	// URLBase is the leading path segment. Defaults to the lowercased
	// model type name.
	URLBase string

	// LookupField is the record field used to resolve a single record.
	// Defaults to "id".
	LookupField string

	// LookupParam is the URL keyword for the identifying segment.
	// Defaults to "pk".
	LookupParam string

	// TemplateSuffix overrides the role-derived template suffix for every
	// role of this resource.
	TemplateSuffix string

	// Roles limits which views the resource exposes. Defaults to all five.
	Roles []Role

	// Converter constrains and parses the identifying path segment.
	// Defaults to ConverterInt.
	Converter Converter
}

// normalized returns a copy with defaults applied.
func (c Config) normalized() Config {
	if c.URLBase == "" {
		c.URLBase = modelName(c.Model)
	}
	if c.LookupField == "" {
		c.LookupField = "id"
	}
	if c.LookupParam == "" {
		c.LookupParam = "pk"
	}
	if len(c.Roles) == 0 {
		c.Roles = slices.Clone(AllRoles)
	}
	return c
}

// validate reports wiring defects. These are programming errors, caught at
// construction, never at request time.
func (c Config) validate() error {
	if _, err := structType(c.Model); err != nil {
		return err
	}
	if len(c.Fields) == 0 {
		return fmt.Errorf("%w: no fields configured for %T", ErrMisconfigured, c.Model)
	}
	return nil
}

// enabled reports whether the role is part of this resource's role set.
func (c Config) enabled(role Role) bool {
	return slices.Contains(c.Roles, role)
}

// viewSettings is the per-role view configuration after merging role
// defaults with explicit config overrides.
type viewSettings struct {
	templateSuffix string
}

// settingsFor merges role-derived defaults with explicit configuration.
// Role defaults are a fallback; explicit config always wins.
func settingsFor(role Role, cfg Config) viewSettings {
	s := viewSettings{
		templateSuffix: role.TemplateSuffix(),
	}
	if cfg.TemplateSuffix != "" {
		s.templateSuffix = cfg.TemplateSuffix
	}
	return s
}

// modelName returns the lowercased type name of the model prototype.
func modelName(model any) string {
	t, err := structType(model)
	if err != nil {
		return ""
	}
	return strings.ToLower(t.Name())
}
