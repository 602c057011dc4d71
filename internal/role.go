package internal

import (
	"fmt"
	"net/http"
	"slices"
)

// Role identifies one of the five CRUD view kinds. Each role maps to a URL
// pattern, a URL name, a template suffix, and a handler method set through
// the lookup tables below.
type Role int

const (
	RoleList Role = iota
	RoleDetail
	RoleCreate
	RoleUpdate
	RoleDelete
)

// AllRoles lists every role in declaration order. Route emission order is
// governed by routeOrder, not by this slice.
var AllRoles = []Role{RoleList, RoleDetail, RoleCreate, RoleUpdate, RoleDelete}

var roleNames = map[Role]string{
	RoleList:   "list",
	RoleDetail: "detail",
	RoleCreate: "create",
	RoleUpdate: "update",
	RoleDelete: "delete",
}

// roleRequiresObject marks roles whose URL carries a record-identifying
// path segment.
var roleRequiresObject = map[Role]bool{
	RoleDetail: true,
	RoleUpdate: true,
	RoleDelete: true,
}

// roleMethods maps each role to the HTTP methods its handler accepts.
// GET renders, POST mutates.
var roleMethods = map[Role][]string{
	RoleList:   {http.MethodGet},
	RoleDetail: {http.MethodGet},
	RoleCreate: {http.MethodGet, http.MethodPost},
	RoleUpdate: {http.MethodGet, http.MethodPost},
	RoleDelete: {http.MethodGet, http.MethodPost},
}

var roleTemplateSuffixes = map[Role]string{
	RoleList:   "_list",
	RoleDetail: "_detail",
	RoleCreate: "_form",
	RoleUpdate: "_form",
	RoleDelete: "_confirm_delete",
}

// routeOrder fixes route emission order. CREATE comes before DETAIL so the
// literal "new/" segment is never captured as a lookup value by permissive
// converters (slug, str). The order holds for any role subset.
var routeOrder = map[Role]int{
	RoleList:   0,
	RoleCreate: 1,
	RoleDetail: 2,
	RoleUpdate: 3,
	RoleDelete: 4,
}

// String returns the lowercase role name used in URL names.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// RequiresObject reports whether the role's URL carries a record-identifying
// path segment.
func (r Role) RequiresObject() bool {
	return roleRequiresObject[r]
}

// TemplateSuffix returns the default template name suffix for the role.
func (r Role) TemplateSuffix() string {
	return roleTemplateSuffixes[r]
}

// Methods returns the HTTP methods the role's handler accepts.
func (r Role) Methods() []string {
	return slices.Clone(roleMethods[r])
}

// RouteEntry is one generated route: a role bound to its URL pattern, URL
// name, accepted methods, and (once bound by a Resource) its handler.
type RouteEntry struct {
	Handler HandlerFunc
	Pattern string
	Name    string
	Methods []string
	Role    Role
}

// URLPattern builds the chi route pattern for a role. Patterns keep a
// trailing slash to match the canonical URL shape:
//
//	LIST    /base/
//	CREATE  /base/new/
//	DETAIL  /base/{pk:...}/
//	UPDATE  /base/{pk:...}/edit/
//	DELETE  /base/{pk:...}/delete/
func URLPattern(role Role, cfg Config) string {
	cfg = cfg.normalized()
	base := "/" + cfg.URLBase + "/"
	switch role {
	case RoleList:
		return base
	case RoleCreate:
		return base + "new/"
	case RoleDetail:
		return base + cfg.Converter.Segment(cfg.LookupParam) + "/"
	case RoleUpdate:
		return base + cfg.Converter.Segment(cfg.LookupParam) + "/edit/"
	case RoleDelete:
		return base + cfg.Converter.Segment(cfg.LookupParam) + "/delete/"
	}
	return base
}

// URLName derives the route name: "{urlBase}-{role}", e.g. "bookmark-detail".
func URLName(role Role, cfg Config) string {
	cfg = cfg.normalized()
	return cfg.URLBase + "-" + role.String()
}

// RoutesFor emits one unbound route entry per requested role, in canonical
// order (list, create, detail, update, delete). Passing no roles emits all
// five. Handlers are nil; Resource.GetRoutes binds them.
func RoutesFor(cfg Config, roles ...Role) []RouteEntry {
	if len(roles) == 0 {
		roles = AllRoles
	}
	ordered := slices.Clone(roles)
	slices.SortStableFunc(ordered, func(a, b Role) int {
		return routeOrder[a] - routeOrder[b]
	})

	entries := make([]RouteEntry, 0, len(ordered))
	for _, role := range ordered {
		entries = append(entries, RouteEntry{
			Role:    role,
			Pattern: URLPattern(role, cfg),
			Name:    URLName(role, cfg),
			Methods: role.Methods(),
		})
	}
	return entries
}

// Reverse builds the canonical URL for a role, substituting the record's
// lookup-field value when the role requires an identifying segment.
// Returns ErrObjectRequired when a record is needed but nil, and
// ErrUnknownLookupField when the record lacks the configured lookup field.
func Reverse(role Role, cfg Config, record any) (string, error) {
	cfg = cfg.normalized()
	base := "/" + cfg.URLBase + "/"
	switch role {
	case RoleList:
		return base, nil
	case RoleCreate:
		return base + "new/", nil
	}

	if record == nil {
		return "", fmt.Errorf("%w: reverse %s", ErrObjectRequired, URLName(role, cfg))
	}
	value, err := lookupFieldValue(record, cfg.LookupField)
	if err != nil {
		return "", err
	}
	segment := fmt.Sprintf("%v", value)

	switch role {
	case RoleDetail:
		return base + segment + "/", nil
	case RoleUpdate:
		return base + segment + "/edit/", nil
	case RoleDelete:
		return base + segment + "/delete/", nil
	}
	return "", fmt.Errorf("%w: unknown role %d", ErrMisconfigured, int(role))
}
