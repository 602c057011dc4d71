package binder

import (
	"encoding"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// FieldError reports a form value that could not be converted to the
// target field's type. It is user input, not a programming error, so
// callers usually surface it as a validation failure.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("bind field %q: invalid value %q", e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Option configures a Form call.
type Option func(*options)

type options struct {
	fields []string
}

// Fields restricts binding to the named fields.
// Names use the same matching rules as form keys.
func Fields(names ...string) Option {
	return func(o *options) {
		o.fields = names
	}
}

// Form parses the request form and binds matching values into v,
// which must be a non-nil pointer to a struct.
func Form(r *http.Request, v any, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("bind form: destination must be a non-nil struct pointer, got %T", v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("bind form: destination must point to a struct, got %T", v)
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := formName(sf)
		if name == "-" {
			continue
		}
		if len(o.fields) > 0 && !allowed(o.fields, sf, name) {
			continue
		}

		raw, ok := formValue(r, name, sf)
		if !ok {
			continue
		}

		if err := setValue(rv.Field(i), raw); err != nil {
			return &FieldError{Field: name, Value: raw, Err: err}
		}
	}
	return nil
}

// formName returns the form key for a struct field: the form tag when
// present, the lowercased Go name otherwise.
func formName(sf reflect.StructField) string {
	if tag := sf.Tag.Get("form"); tag != "" {
		return strings.Split(tag, ",")[0]
	}
	return strings.ToLower(sf.Name)
}

// nameMatches compares a form key against a struct field, ignoring case
// and underscores so "telegram_id" matches TelegramID.
func nameMatches(key string, sf reflect.StructField, formKey string) bool {
	if key == formKey {
		return true
	}
	fold := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "_", ""))
	}
	return fold(key) == fold(sf.Name) || fold(key) == fold(formKey)
}

func allowed(fields []string, sf reflect.StructField, formKey string) bool {
	for _, f := range fields {
		if nameMatches(f, sf, formKey) {
			return true
		}
	}
	return false
}

// formValue finds the submitted value for a field, checking the exact
// form key first and relaxed name matches second.
func formValue(r *http.Request, key string, sf reflect.StructField) (string, bool) {
	if vs, ok := r.Form[key]; ok && len(vs) > 0 {
		return vs[0], true
	}
	for k, vs := range r.Form {
		if len(vs) > 0 && nameMatches(k, sf, key) {
			return vs[0], true
		}
	}
	return "", false
}

func setValue(fv reflect.Value, raw string) error {
	if !fv.CanSet() {
		return nil
	}

	// TextUnmarshaler first: covers uuid.UUID and similar scalar types.
	if fv.CanAddr() {
		if u, ok := fv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText([]byte(raw))
		}
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		// Unchecked checkboxes submit nothing; an empty value means false.
		if raw == "" {
			fv.SetBool(false)
			return nil
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	case reflect.Pointer:
		elem := reflect.New(fv.Type().Elem())
		if err := setValue(elem.Elem(), raw); err != nil {
			return err
		}
		fv.Set(elem)
	default:
		// Relations and other composite kinds are not form-bindable; they
		// are resolved by the persistence layer, not the form.
		return nil
	}
	return nil
}
