package litequery

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"

	"github.com/golobby/litequery/qb"
)

// Tabler lets a struct choose its own table name.
type Tabler interface {
	TableName() string
}

// TableOf returns the table a struct is stored in: TableName() when
// implemented, otherwise the plural snake case of the type name.
func TableOf(v interface{}) string {
	if t, ok := v.(Tabler); ok {
		return t.TableName()
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return pluralize.NewClient().Plural(strcase.ToSnake(t.Name()))
}

type fieldTag struct {
	Name    string
	Virtual bool
	PK      bool
}

// fieldTagOf parses `db:"col=name pk"`. col=_ skips the field.
func fieldTagOf(t string) fieldTag {
	var tag fieldTag
	if t == "" {
		return tag
	}
	for _, tuple := range strings.Fields(t) {
		parts := strings.SplitN(tuple, "=", 2)
		switch parts[0] {
		case "col":
			if len(parts) == 2 {
				tag.Name = parts[1]
			}
		case "pk":
			tag.PK = true
		}
	}
	if tag.Name == "_" {
		tag.Virtual = true
	}
	return tag
}

// PayloadOf builds an insert payload from the exported fields of a struct,
// in declaration order. Column names come from the col tag or the snake case
// field name. A zero primary key (a field named ID or tagged pk) is left out
// so the database assigns it. Nested structs other than time.Time, slices
// and maps are skipped.
func PayloadOf(v interface{}) (qb.Payload, error) {
	var payload qb.Payload
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return payload, fmt.Errorf("%w: nil pointer passed to PayloadOf", ErrInvalidArgument)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return payload, fmt.Errorf("%w: PayloadOf expects a struct, got %T", ErrInvalidArgument, v)
	}

	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		if ft.PkgPath != "" {
			continue
		}
		tag := fieldTagOf(ft.Tag.Get("db"))
		if tag.Virtual || !storable(ft.Type) {
			continue
		}
		fv := rv.Field(i)
		if (tag.PK || strings.ToLower(ft.Name) == "id") && fv.IsZero() {
			continue
		}
		name := tag.Name
		if name == "" {
			name = strcase.ToSnake(ft.Name)
		}
		payload = payload.Set(name, fv.Interface())
	}
	return payload, nil
}

func storable(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		return t.PkgPath() == "time" && t.Name() == "Time"
	case reflect.Slice:
		return t.Elem().Kind() == reflect.Uint8
	case reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Array:
		return false
	default:
		return true
	}
}
