package internal

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// structType unwraps pointers and returns the model's struct type.
func structType(model any) (reflect.Type, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil model", ErrMisconfigured)
	}
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: model must be a struct, got %T", ErrMisconfigured, model)
	}
	return t, nil
}

// foldName lowers a field name and strips underscores so "telegram_id"
// matches TelegramID. Same matching rule as the form binder.
func foldName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// fieldByName finds a struct field by relaxed name match.
func fieldByName(rv reflect.Value, name string) (reflect.Value, bool) {
	rv = reflect.Indirect(rv)
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if foldName(sf.Name) == foldName(name) {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// lookupFieldValue extracts the lookup-field value from a record.
func lookupFieldValue(record any, field string) (any, error) {
	fv, ok := fieldByName(reflect.ValueOf(record), field)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no field %q", ErrUnknownLookupField, record, field)
	}
	return fv.Interface(), nil
}

// displayValue renders a field value the way a template should show it:
// the natural string form for types that have one, all values joined for
// many-valued relations, and the fmt representation otherwise.
func displayValue(fv reflect.Value) string {
	if !fv.IsValid() {
		return ""
	}
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return ""
		}
		return displayValue(fv.Elem())
	}
	if s, ok := fv.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() != reflect.Uint8 {
		parts := make([]string, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			parts[i] = displayValue(fv.Index(i))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%v", fv.Interface())
}

// formBindable reports whether a field can be edited through a text input.
// Relations and other composite kinds are resolved by the persistence
// layer, not the form.
func formBindable(fv reflect.Value) bool {
	t := fv.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

var textUnmarshalerType = reflect.TypeOf((*interface {
	UnmarshalText(text []byte) error
})(nil)).Elem()

// filterValue parses a query value into the most specific type so the
// persistence layer compares it correctly: int, then bool, then string.
func filterValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
