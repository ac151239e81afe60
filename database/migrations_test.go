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

package database

import (
	"testing"

	"github.com/kestreldb/kestrel/backend"
)

func usersSchema() TableSchema {
	return TableSchema{
		Table: "users",
		Columns: []backend.ColumnDef{
			{Name: "id", Kind: backend.KindBigInt, PrimaryKey: true},
			{Name: "name", Kind: backend.KindString, NotNull: true},
			{Name: "deleted_at", Kind: backend.KindTime},
		},
	}
}

func TestBuildCreateTablePerDialect(t *testing.T) {
	schema := usersSchema()

	tests := []struct {
		dbType string
		want   string
	}{
		{
			dbType: "postgres",
			want: "CREATE TABLE IF NOT EXISTS users (" +
				"id BIGSERIAL PRIMARY KEY, " +
				"name VARCHAR NOT NULL, " +
				"deleted_at TIMESTAMP WITH TIME ZONE)",
		},
		{
			dbType: "mysql",
			want: "CREATE TABLE IF NOT EXISTS users (" +
				"id BIGINT PRIMARY KEY AUTO_INCREMENT, " +
				"name VARCHAR(255) NOT NULL, " +
				"deleted_at DATETIME)",
		},
		{
			dbType: "sqlite",
			want: "CREATE TABLE IF NOT EXISTS users (" +
				"id INTEGER PRIMARY KEY AUTOINCREMENT, " +
				"name TEXT NOT NULL, " +
				"deleted_at TEXT)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			m := NewMigrationManager(nil, tt.dbType, GetLogger())
			got, err := m.buildCreateTable(schema)
			if err != nil {
				t.Fatalf("buildCreateTable: %v", err)
			}
			if got != tt.want {
				t.Errorf("DDL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCreateTableUnsupportedDialect(t *testing.T) {
	m := NewMigrationManager(nil, "oracle", GetLogger())
	if _, err := m.buildCreateTable(usersSchema()); err == nil {
		t.Error("unsupported dialect should error")
	}
}

func TestSchemaRegistryOrdersByPriority(t *testing.T) {
	r := newSchemaRegistry()
	r.Register(TableSchema{Table: "comments", Priority: 20})
	r.Register(TableSchema{Table: "users", Priority: 1})
	r.Register(TableSchema{Table: "posts", Priority: 10})

	schemas := r.Schemas()
	got := []string{schemas[0].Table, schemas[1].Table, schemas[2].Table}
	want := []string{"users", "posts", "comments"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
