package internal

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/crud/pkg/binder"
	"github.com/dmitrymomot/crud/pkg/render"
	"github.com/dmitrymomot/crud/pkg/repo"
)

// Cell is one rendered field of a record: the field name and its display
// string.
type Cell struct {
	Label string
	Value string
}

// Object is a record prepared for rendering, with per-role action URLs.
// URLs are empty when the corresponding role is not enabled.
type Object struct {
	Cells     []Cell
	DetailURL string
	UpdateURL string
	DeleteURL string
}

// FormField is one editable field of a form, with its submitted value and
// any validation messages.
type FormField struct {
	Name   string
	Label  string
	Value  string
	Errors []string
}

// TemplateData is the context handed to list, detail, form and confirm
// templates. Custom templates receive the same shape.
type TemplateData struct {
	Errors          map[string][]string
	Object          *Object
	ModelName       string
	ModelNamePlural string
	Action          string
	CreateURL       string
	ListURL         string
	Fields          []string
	Objects         []Object
	Form            []FormField
}

// Resource is a generic CRUD controller for one entity type. It generates
// its own route table from the role set and serves every enabled role
// through request-scoped handlers. Configuration is read-only after
// construction, so a single Resource is safe for concurrent requests.
type Resource struct {
	repository repo.Repository
	renderer   render.Renderer
	model      reflect.Type
	cfg        Config
}

// ResourceOption configures a Resource.
type ResourceOption func(*Resource)

// WithRenderer sets a custom template renderer.
// Defaults to the embedded generic templates.
func WithRenderer(r render.Renderer) ResourceOption {
	return func(rs *Resource) {
		if r != nil {
			rs.renderer = r
		}
	}
}

// NewResource creates a CRUD controller backed by the given repository.
// The configuration is normalized and validated once; invalid wiring is an
// error here, never at request time.
func NewResource(repository repo.Repository, cfg Config, opts ...ResourceOption) (*Resource, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if repository == nil {
		return nil, fmt.Errorf("%w: nil repository for %T", ErrMisconfigured, cfg.Model)
	}

	model, err := structType(cfg.Model)
	if err != nil {
		return nil, err
	}

	rs := &Resource{
		repository: repository,
		renderer:   render.Default(),
		model:      model,
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs, nil
}

// MustResource is like NewResource but panics on configuration errors.
// Use at startup where a wiring defect should stop the process.
func MustResource(repository repo.Repository, cfg Config, opts ...ResourceOption) *Resource {
	rs, err := NewResource(repository, cfg, opts...)
	if err != nil {
		panic(err)
	}
	return rs
}

// Config returns the normalized resource configuration.
func (rs *Resource) Config() Config {
	return rs.cfg
}

// GetRoutes returns the bound route table for the requested roles.
// Passing no roles uses the resource's configured role set.
func (rs *Resource) GetRoutes(roles ...Role) []RouteEntry {
	if len(roles) == 0 {
		roles = rs.cfg.Roles
	}
	entries := RoutesFor(rs.cfg, roles...)
	for i := range entries {
		entries[i].Handler = rs.handler(entries[i].Role)
	}
	return entries
}

// Routes implements Handler by registering the resource's route table.
// Entries are registered in table order, which keeps the literal "new/"
// pattern ahead of the identifying-segment patterns.
func (rs *Resource) Routes(r Router) {
	for _, entry := range rs.GetRoutes() {
		for _, method := range entry.Methods {
			r.Method(method, entry.Pattern, entry.Handler)
		}
	}
}

// handler dispatches a role to its operation. GET renders, POST mutates.
func (rs *Resource) handler(role Role) HandlerFunc {
	return func(c Context) error {
		post := c.Request().Method == http.MethodPost
		switch role {
		case RoleList:
			return rs.list(c)
		case RoleDetail:
			return rs.detail(c)
		case RoleCreate:
			if post {
				return rs.createSubmit(c)
			}
			return rs.createForm(c)
		case RoleUpdate:
			if post {
				return rs.updateSubmit(c)
			}
			return rs.updateForm(c)
		case RoleDelete:
			if post {
				return rs.deleteSubmit(c)
			}
			return rs.deleteConfirm(c)
		}
		return fmt.Errorf("%w: no handler for role %d", ErrMisconfigured, int(role))
	}
}

// list renders all records, optionally narrowed by whitelisted query
// filters (?field=value).
func (rs *Resource) list(c Context) error {
	filters := make(map[string]any)
	for _, field := range rs.cfg.FilterFields {
		if raw := c.Query(field); raw != "" {
			filters[field] = filterValue(raw)
		}
	}

	slicePtr := reflect.New(reflect.SliceOf(rs.model))
	if err := rs.repository.List(c.Context(), slicePtr.Interface(), filters); err != nil {
		return fmt.Errorf("list %s: %w", rs.cfg.URLBase, err)
	}

	records := slicePtr.Elem()
	data := rs.baseData()
	data.Objects = make([]Object, 0, records.Len())
	for i := 0; i < records.Len(); i++ {
		data.Objects = append(data.Objects, rs.object(records.Index(i).Addr().Interface()))
	}

	return rs.render(c, http.StatusOK, RoleList, data)
}

// detail renders a single record resolved by the lookup field.
func (rs *Resource) detail(c Context) error {
	record, err := rs.resolve(c)
	if err != nil {
		return err
	}
	data := rs.baseData()
	obj := rs.object(record)
	data.Object = &obj
	return rs.render(c, http.StatusOK, RoleDetail, data)
}

// createForm renders a blank form.
func (rs *Resource) createForm(c Context) error {
	record := reflect.New(rs.model).Interface()
	data := rs.formData(record, nil, RoleCreate)
	return rs.render(c, http.StatusOK, RoleCreate, data)
}

// createSubmit validates and persists a new record, then redirects to its
// detail view. Invalid input re-renders the form and persists nothing.
func (rs *Resource) createSubmit(c Context) error {
	record := reflect.New(rs.model).Interface()
	verrs, err := c.Bind(record, binder.Fields(rs.cfg.Fields...))
	if err != nil {
		return fmt.Errorf("create %s: %w", rs.cfg.URLBase, err)
	}
	if len(verrs) > 0 {
		data := rs.formData(record, verrs, RoleCreate)
		return rs.render(c, http.StatusUnprocessableEntity, RoleCreate, data)
	}

	if err := rs.repository.Save(c.Context(), record); err != nil {
		return fmt.Errorf("create %s: %w", rs.cfg.URLBase, err)
	}
	c.LogInfo("record created", "resource", rs.cfg.URLBase)
	return rs.redirectToDetail(c, record)
}

// updateForm renders the form pre-filled with the resolved record.
func (rs *Resource) updateForm(c Context) error {
	record, err := rs.resolve(c)
	if err != nil {
		return err
	}
	data := rs.formData(record, nil, RoleUpdate)
	return rs.render(c, http.StatusOK, RoleUpdate, data)
}

// updateSubmit validates and persists changes to the resolved record.
// Invalid input re-renders the form and leaves the stored record unchanged.
func (rs *Resource) updateSubmit(c Context) error {
	record, err := rs.resolve(c)
	if err != nil {
		return err
	}
	verrs, err := c.Bind(record, binder.Fields(rs.cfg.Fields...))
	if err != nil {
		return fmt.Errorf("update %s: %w", rs.cfg.URLBase, err)
	}
	if len(verrs) > 0 {
		data := rs.formData(record, verrs, RoleUpdate)
		return rs.render(c, http.StatusUnprocessableEntity, RoleUpdate, data)
	}

	if err := rs.repository.Save(c.Context(), record); err != nil {
		return fmt.Errorf("update %s: %w", rs.cfg.URLBase, err)
	}
	c.LogInfo("record updated", "resource", rs.cfg.URLBase)
	return rs.redirectToDetail(c, record)
}

// deleteConfirm renders the confirmation page for the resolved record.
func (rs *Resource) deleteConfirm(c Context) error {
	record, err := rs.resolve(c)
	if err != nil {
		return err
	}
	data := rs.baseData()
	obj := rs.object(record)
	data.Object = &obj
	data.Action, _ = Reverse(RoleDelete, rs.cfg, record)
	return rs.render(c, http.StatusOK, RoleDelete, data)
}

// deleteSubmit removes the resolved record and redirects to the list view.
func (rs *Resource) deleteSubmit(c Context) error {
	record, err := rs.resolve(c)
	if err != nil {
		return err
	}
	if err := rs.repository.Delete(c.Context(), record); err != nil {
		return fmt.Errorf("delete %s: %w", rs.cfg.URLBase, err)
	}
	c.LogInfo("record deleted", "resource", rs.cfg.URLBase)

	url, err := Reverse(RoleList, rs.cfg, nil)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, url)
}

// resolve loads the record identified by the request's lookup path segment.
// A missing path parameter is a wiring defect; an unparseable or unmatched
// value is a 404.
func (rs *Resource) resolve(c Context) (any, error) {
	raw := c.Param(rs.cfg.LookupParam)
	if raw == "" {
		return nil, fmt.Errorf("%w: missing %q path parameter", ErrMisconfigured, rs.cfg.LookupParam)
	}
	value, err := rs.cfg.Converter.Parse(raw)
	if err != nil {
		return nil, ErrNotFound("Not Found", WithError(err))
	}

	record := reflect.New(rs.model).Interface()
	if err := rs.repository.GetByField(c.Context(), record, rs.cfg.LookupField, value); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound("Not Found", WithError(err))
		}
		return nil, fmt.Errorf("resolve %s: %w", rs.cfg.URLBase, err)
	}
	return record, nil
}

// redirectToDetail sends the client to the record's detail view, falling
// back to the list view when the detail role is not enabled.
func (rs *Resource) redirectToDetail(c Context, record any) error {
	role := RoleDetail
	if !rs.cfg.enabled(role) {
		role = RoleList
		record = nil
	}
	url, err := Reverse(role, rs.cfg, record)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, url)
}

// render executes the role's template with most-specific-first candidates:
// "{model}{suffix}.html" then "object{suffix}.html".
func (rs *Resource) render(c Context, code int, role Role, data TemplateData) error {
	suffix := settingsFor(role, rs.cfg).templateSuffix
	candidates := []string{
		modelName(rs.cfg.Model) + suffix + ".html",
		"object" + suffix + ".html",
	}
	return c.Render(code, render.Component(rs.renderer, candidates, data))
}

// baseData builds the template context shared by every view.
func (rs *Resource) baseData() TemplateData {
	name := modelName(rs.cfg.Model)
	data := TemplateData{
		ModelName:       name,
		ModelNamePlural: name + "s",
		Fields:          rs.cfg.Fields,
	}
	if rs.cfg.enabled(RoleList) {
		data.ListURL, _ = Reverse(RoleList, rs.cfg, nil)
	}
	if rs.cfg.enabled(RoleCreate) {
		data.CreateURL, _ = Reverse(RoleCreate, rs.cfg, nil)
	}
	return data
}

// formData builds the template context for form views.
func (rs *Resource) formData(record any, verrs ValidationErrors, role Role) TemplateData {
	data := rs.baseData()
	data.Form = rs.formFields(record, verrs)
	if verrs != nil {
		data.Errors = verrs.Fields()
	}
	if role == RoleCreate {
		data.Action, _ = Reverse(RoleCreate, rs.cfg, nil)
	} else {
		data.Action, _ = Reverse(role, rs.cfg, record)
	}
	return data
}

// object prepares one record for rendering: display cells for every
// configured field plus action URLs for the enabled roles.
func (rs *Resource) object(record any) Object {
	rv := reflect.Indirect(reflect.ValueOf(record))
	obj := Object{Cells: make([]Cell, 0, len(rs.cfg.Fields))}
	for _, field := range rs.cfg.Fields {
		fv, ok := fieldByName(rv, field)
		if !ok {
			continue
		}
		obj.Cells = append(obj.Cells, Cell{Label: field, Value: displayValue(fv)})
	}
	if rs.cfg.enabled(RoleDetail) {
		obj.DetailURL, _ = Reverse(RoleDetail, rs.cfg, record)
	}
	if rs.cfg.enabled(RoleUpdate) {
		obj.UpdateURL, _ = Reverse(RoleUpdate, rs.cfg, record)
	}
	if rs.cfg.enabled(RoleDelete) {
		obj.DeleteURL, _ = Reverse(RoleDelete, rs.cfg, record)
	}
	return obj
}

// formFields builds editable form fields from the configured field list.
// Relation fields are display-only and excluded from forms.
func (rs *Resource) formFields(record any, verrs ValidationErrors) []FormField {
	rv := reflect.Indirect(reflect.ValueOf(record))
	fields := make([]FormField, 0, len(rs.cfg.Fields))
	for _, field := range rs.cfg.Fields {
		fv, ok := fieldByName(rv, field)
		if !ok || !formBindable(fv) {
			continue
		}
		ff := FormField{
			Name:  field,
			Label: field,
			Value: displayValue(fv),
		}
		for _, ve := range verrs {
			if foldName(ve.Field) == foldName(field) {
				ff.Errors = append(ff.Errors, ve.Message)
			}
		}
		fields = append(fields, ff)
	}
	return fields
}
