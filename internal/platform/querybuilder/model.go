package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel starts an insert whose columns and values come from the db tags
// of an exported struct. Untagged fields and `db:"-"` are skipped.
func InsertModel(table string, model any) *InsertBuilder {
	b := InsertInto(table)
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		b.err = fmt.Errorf("insert %s: %w", table, err)
		return b
	}
	return b.Columns(cols...).Values(vals...)
}

// ModelColumns lists the db columns of a struct type, each prefixed with
// qualifier when it is not empty.
func ModelColumns(model any, qualifier string) []string {
	typ := reflect.TypeOf(model)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil
	}

	cols := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		col, ok := dbColumn(typ.Field(i))
		if !ok {
			continue
		}
		if qualifier != "" {
			col = qualifier + "." + col
		}
		cols = append(cols, col)
	}
	return cols
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		col, ok := dbColumn(typ.Field(i))
		if !ok {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func dbColumn(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
	name = strings.TrimSpace(name)
	if name == "" || name == "-" {
		return "", false
	}
	return name, true
}
