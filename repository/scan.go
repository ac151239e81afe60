/*
 * Copyright 2025 kestreldb.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package repository

import (
	"database/sql"
	"fmt"
	"reflect"

	"github.com/iancoleman/strcase"
)

// columnIndexes maps result-set column names to exported field indexes of a
// struct type. The db tag wins when present; otherwise the snake_cased field
// name is used. Fields tagged db:"-" are skipped.
func columnIndexes(t reflect.Type) map[string]int {
	indexes := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("db")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strcase.ToSnake(field.Name)
		}
		indexes[name] = i
	}
	return indexes
}

// ColumnsFor derives a column allow-list from the exported fields of T, in
// declaration order, using the same db-tag and snake_case naming as the row
// scanner. It gives types without registered metadata a real allow-list
// instead of none.
func ColumnsFor[T any]() []string {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() != reflect.Struct {
		return nil
	}
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("db")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strcase.ToSnake(field.Name)
		}
		columns = append(columns, name)
	}
	return columns
}

// scanRows reads every row into values of T, matching columns to struct
// fields by name. Columns with no matching field are discarded rather than
// failing, so SELECT * stays usable as schemas grow.
func scanRows[T any](rows *sql.Rows) ([]T, error) {
	defer func() { _ = rows.Close() }()

	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("scan target must be a struct, got %s", t.Kind())
	}
	indexes := columnIndexes(t)

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var items []T
	for rows.Next() {
		entity := new(T)
		v := reflect.ValueOf(entity).Elem()

		dest := make([]interface{}, len(columns))
		for i, column := range columns {
			if idx, ok := indexes[column]; ok {
				dest[i] = v.Field(idx).Addr().Interface()
			} else {
				dest[i] = new(interface{})
			}
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		items = append(items, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// scanOne reads exactly one row into T, returning sql.ErrNoRows when the
// result set is empty.
func scanOne[T any](rows *sql.Rows) (*T, error) {
	items, err := scanRows[T](rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, sql.ErrNoRows
	}
	return &items[0], nil
}
