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

package backend

import "testing"

func intPtr(v int) *int { return &v }

func TestPlaceholder(t *testing.T) {
	b := Default
	if got := b.Placeholder(1); got != "$1" {
		t.Errorf("Placeholder(1) = %q, want $1", got)
	}
	if got := b.Placeholder(42); got != "$42" {
		t.Errorf("Placeholder(42) = %q, want $42", got)
	}
}

func TestBuildSelectQuery(t *testing.T) {
	b := Default

	tests := []struct {
		name       string
		columns    []string
		conditions []string
		limit      *int
		offset     *int
		want       string
	}{
		{
			name: "all columns no conditions",
			want: "SELECT * FROM users",
		},
		{
			name:    "explicit columns",
			columns: []string{"id", "name"},
			want:    "SELECT id, name FROM users",
		},
		{
			name:       "single condition",
			conditions: []string{"id = $1"},
			want:       "SELECT * FROM users WHERE id = $1",
		},
		{
			name:       "conditions joined with AND",
			conditions: []string{"deleted_at IS NULL", "status = $1"},
			want:       "SELECT * FROM users WHERE deleted_at IS NULL AND status = $1",
		},
		{
			name:   "limit and offset",
			limit:  intPtr(10),
			offset: intPtr(20),
			want:   "SELECT * FROM users LIMIT 10 OFFSET 20",
		},
		{
			name:       "everything",
			conditions: []string{"deleted_at IS NULL"},
			limit:      intPtr(5),
			offset:     intPtr(0),
			want:       "SELECT * FROM users WHERE deleted_at IS NULL LIMIT 5 OFFSET 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.BuildSelectQuery("users", tt.columns, tt.conditions, tt.limit, tt.offset)
			if got != tt.want {
				t.Errorf("BuildSelectQuery = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildInsertQuery(t *testing.T) {
	b := Default

	got := b.BuildInsertQuery("users", []string{"name", "email"}, true)
	want := "INSERT INTO users (name, email) VALUES ($1, $2) RETURNING *"
	if got != want {
		t.Errorf("BuildInsertQuery = %q, want %q", got, want)
	}

	got = b.BuildInsertQuery("users", []string{"name"}, false)
	want = "INSERT INTO users (name) VALUES ($1)"
	if got != want {
		t.Errorf("BuildInsertQuery = %q, want %q", got, want)
	}
}

func TestBuildUpdateQuery(t *testing.T) {
	b := Default

	got := b.BuildUpdateQuery("users", []string{"name", "email"}, true)
	want := "UPDATE users SET name = $1, email = $2 WHERE id = $3 RETURNING *"
	if got != want {
		t.Errorf("BuildUpdateQuery = %q, want %q", got, want)
	}

	got = b.BuildUpdateQuery("users", []string{"name"}, false)
	want = "UPDATE users SET name = $1 WHERE id = $2"
	if got != want {
		t.Errorf("BuildUpdateQuery = %q, want %q", got, want)
	}
}

func TestBuildDeleteQuery(t *testing.T) {
	b := Default

	got := b.BuildDeleteQuery("users", true)
	want := "UPDATE users SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL"
	if got != want {
		t.Errorf("soft delete = %q, want %q", got, want)
	}

	got = b.BuildDeleteQuery("users", false)
	want = "DELETE FROM users WHERE id = $1"
	if got != want {
		t.Errorf("hard delete = %q, want %q", got, want)
	}
}

func TestBuildRestoreQuery(t *testing.T) {
	got := Default.BuildRestoreQuery("users")
	want := "UPDATE users SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 RETURNING *"
	if got != want {
		t.Errorf("BuildRestoreQuery = %q, want %q", got, want)
	}
}

func TestBuildQueriesAreDeterministic(t *testing.T) {
	b := Default
	conditions := []string{"deleted_at IS NULL", "(name ILIKE $1 OR email ILIKE $1)", "status = $2"}

	first := b.BuildSelectQuery("users", nil, conditions, intPtr(10), intPtr(0))
	second := b.BuildSelectQuery("users", nil, conditions, intPtr(10), intPtr(0))
	if first != second {
		t.Errorf("rebuilding the same statement produced different SQL:\n%s\n%s", first, second)
	}
}

func TestColumnType(t *testing.T) {
	b := Default

	tests := []struct {
		kind ColumnKind
		want string
	}{
		{KindInt, "INTEGER"},
		{KindBigInt, "BIGINT"},
		{KindString, "VARCHAR"},
		{KindText, "TEXT"},
		{KindBool, "BOOLEAN"},
		{KindTime, "TIMESTAMP WITH TIME ZONE"},
		{KindJSON, "JSONB"},
		{ColumnKind("mystery"), "VARCHAR"},
	}
	for _, tt := range tests {
		if got := b.ColumnType(tt.kind); got != tt.want {
			t.Errorf("ColumnType(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestBuildCreateTableQuery(t *testing.T) {
	b := Default

	columns := []ColumnDef{
		{Name: "id", Kind: KindBigInt, PrimaryKey: true},
		{Name: "name", Kind: KindString, NotNull: true},
		{Name: "created_at", Kind: KindTime, NotNull: true, Default: "NOW()"},
		{Name: "deleted_at", Kind: KindTime},
	}
	got := b.BuildCreateTableQuery("users", columns)
	want := "CREATE TABLE IF NOT EXISTS users (" +
		"id BIGSERIAL PRIMARY KEY, " +
		"name VARCHAR NOT NULL, " +
		"created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(), " +
		"deleted_at TIMESTAMP WITH TIME ZONE)"
	if got != want {
		t.Errorf("BuildCreateTableQuery = %q, want %q", got, want)
	}
}
