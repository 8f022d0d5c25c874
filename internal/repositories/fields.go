package repositories

import (
	"reflect"
	"strings"
)

// column is a db-tagged struct field reachable from an entity.
type column struct {
	name     string
	index    []int
	redacted bool // json:"-", excluded from Read
}

// columnsOf walks the struct behind v, descending into embedded structs,
// and returns its db-tagged fields in declaration order.
func columnsOf(t reflect.Type) []column {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var cols []column
	var walk func(t reflect.Type, prefix []int)
	walk = func(t reflect.Type, prefix []int) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			idx := append(append([]int{}, prefix...), i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				walk(f.Type, idx)
				continue
			}
			name := strings.Split(f.Tag.Get("db"), ",")[0]
			if name == "" || name == "-" || !f.IsExported() {
				continue
			}
			cols = append(cols, column{
				name:     name,
				index:    idx,
				redacted: f.Tag.Get("json") == "-",
			})
		}
	}
	walk(t, nil)
	return cols
}

// ColumnNames returns the db column names of the entity type T.
func ColumnNames[T any]() []string {
	cols := columnsOf(reflect.TypeOf((*T)(nil)))
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}
