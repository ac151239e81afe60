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
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

type scanTarget struct {
	ID        int64          `db:"id"`
	FullName  string         `db:"name"`
	CreatedAt sql.NullString `db:"created_at"`
	Ignored   string         `db:"-"`
	SnakeCase string
}

func TestColumnIndexes(t *testing.T) {
	indexes := columnIndexes(reflect.TypeOf(scanTarget{}))

	want := map[string]int{
		"id":         0,
		"name":       1,
		"created_at": 2,
		"snake_case": 4,
	}
	if !reflect.DeepEqual(indexes, want) {
		t.Errorf("columnIndexes = %v, want %v", indexes, want)
	}
}

func TestColumnsFor(t *testing.T) {
	want := []string{"id", "name", "created_at", "snake_case"}
	if got := ColumnsFor[scanTarget](); !reflect.DeepEqual(got, want) {
		t.Errorf("ColumnsFor = %v, want %v", got, want)
	}
}

func queryRows(t *testing.T, rows *sqlmock.Rows) *sql.Rows {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	mock.ExpectQuery("SELECT 1").WillReturnRows(rows)
	result, err := db.Query("SELECT 1")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	return result
}

func TestScanRows(t *testing.T) {
	rows := queryRows(t, sqlmock.NewRows([]string{"id", "name", "snake_case"}).
		AddRow(int64(1), "Alice", "x").
		AddRow(int64(2), "Bob", "y"))

	items, err := scanRows[scanTarget](rows)
	if err != nil {
		t.Fatalf("scanRows: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].ID != 1 || items[0].FullName != "Alice" || items[0].SnakeCase != "x" {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].ID != 2 || items[1].FullName != "Bob" || items[1].SnakeCase != "y" {
		t.Errorf("items[1] = %+v", items[1])
	}
}

func TestScanRowsDiscardsUnknownColumns(t *testing.T) {
	rows := queryRows(t, sqlmock.NewRows([]string{"id", "name", "password_hash"}).
		AddRow(int64(1), "Alice", "secret"))

	items, err := scanRows[scanTarget](rows)
	if err != nil {
		t.Fatalf("scanRows: %v", err)
	}
	if len(items) != 1 || items[0].ID != 1 || items[0].FullName != "Alice" {
		t.Errorf("items = %+v", items)
	}
}

func TestScanOneEmpty(t *testing.T) {
	rows := queryRows(t, sqlmock.NewRows([]string{"id", "name"}))

	_, err := scanOne[scanTarget](rows)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestScanOneReturnsFirstRow(t *testing.T) {
	rows := queryRows(t, sqlmock.NewRows([]string{"id", "name"}).
		AddRow(int64(7), "Alice").
		AddRow(int64(8), "Bob"))

	item, err := scanOne[scanTarget](rows)
	if err != nil {
		t.Fatalf("scanOne: %v", err)
	}
	if item.ID != 7 || item.FullName != "Alice" {
		t.Errorf("item = %+v", item)
	}
}
