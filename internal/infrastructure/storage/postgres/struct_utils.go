package postgres

import (
	"reflect"
	"slices"
	"sync"
)

// ExtractDBColumns lists the "db" tag of every field of T in declaration order,
// descending into embedded structs such as entity.BaseEntity.
//
//	cols := ExtractDBColumns[article.Article]()
//	// ["id", "created_at", "code", "name", "manufacturing_cost", "category_id"]
func ExtractDBColumns[T any]() []string {
	var zero T
	meta := columnsOf(reflect.TypeOf(zero))
	cols := make([]string, 0, len(meta))
	for _, c := range meta {
		cols = append(cols, c.name)
	}
	return cols
}

// column is one tagged field, addressed by its index path from the outer struct.
type column struct {
	name  string
	index []int
}

var columnCache sync.Map // reflect.Type -> []column

func columnsOf(t reflect.Type) []column {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	if cached, ok := columnCache.Load(t); ok {
		return cached.([]column)
	}

	cols := collectColumns(t, nil)
	columnCache.Store(t, cols)
	return cols
}

func collectColumns(t reflect.Type, prefix []int) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		path := append(slices.Clone(prefix), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			cols = append(cols, collectColumns(field.Type, path)...)
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" || !field.IsExported() {
			continue
		}
		cols = append(cols, column{name: tag, index: path})
	}
	return cols
}

// StructToMap maps db column names to field values of v, a struct or a pointer
// to one. Columns named in exclude are left out. Non-struct input yields nil.
func StructToMap(v any, exclude ...string) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	cols := columnsOf(rv.Type())
	res := make(map[string]any, len(cols))
	for _, c := range cols {
		if slices.Contains(exclude, c.name) {
			continue
		}
		res[c.name] = rv.FieldByIndex(c.index).Interface()
	}
	return res
}
