package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// dbField maps a `db` tag to the struct field index that carries it.
type dbField struct {
	column string
	index  int
}

var fieldCache sync.Map // reflect.Type -> []dbField

// InsertModel builds a single-row INSERT from the db-tagged exported fields
// of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	return InsertModels(table, []any{model}, suffix)
}

// InsertModels builds one multi-row INSERT. Every model must share the
// struct type of the first one.
func InsertModels[T any](table string, models []T, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert %s: no models", table)
	}

	builder := InsertInto(table).Suffix(suffix)
	var rowType reflect.Type
	for i, model := range models {
		value, err := structValue(model)
		if err != nil {
			return "", nil, fmt.Errorf("insert %s row %d: %w", table, i, err)
		}
		fields, err := dbFields(value.Type())
		if err != nil {
			return "", nil, fmt.Errorf("insert %s: %w", table, err)
		}
		if rowType == nil {
			rowType = value.Type()
			cols := make([]string, len(fields))
			for j, f := range fields {
				cols[j] = f.column
			}
			builder.Columns(cols...)
		} else if value.Type() != rowType {
			return "", nil, fmt.Errorf("insert %s row %d: got %s want %s", table, i, value.Type(), rowType)
		}

		vals := make([]any, len(fields))
		for j, f := range fields {
			vals[j] = value.Field(f.index).Interface()
		}
		builder.Values(vals...)
	}
	return builder.ToSQL()
}

func structValue(model any) (reflect.Value, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("model must be struct, got %s", value.Kind())
	}
	return value, nil
}

func dbFields(typ reflect.Type) ([]dbField, error) {
	if cached, ok := fieldCache.Load(typ); ok {
		return cached.([]dbField), nil
	}

	fields := make([]dbField, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		column, _, _ := strings.Cut(sf.Tag.Get("db"), ",")
		column = strings.TrimSpace(column)
		if column == "" || column == "-" {
			continue
		}
		fields = append(fields, dbField{column: column, index: i})
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s has no db columns", typ)
	}

	fieldCache.Store(typ, fields)
	return fields, nil
}
