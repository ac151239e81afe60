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

import (
	"fmt"
	"strconv"
	"strings"
)

// Postgres composes statements using the PostgreSQL binding convention ($N).
// The zero value is ready to use.
type Postgres struct{}

// Default is the backend used by repositories unless configured otherwise.
var Default = Postgres{}

func (Postgres) Name() string { return "postgres" }

// Placeholder returns the positional parameter token for a 1-based index.
func (Postgres) Placeholder(index int) string {
	return "$" + strconv.Itoa(index)
}

// BuildSelectQuery composes a SELECT statement. An empty column list renders
// as *. Conditions are joined with AND; an empty list emits no WHERE clause.
// Limit and offset are appended independently when non-nil.
func (b Postgres) BuildSelectQuery(table string, columns []string, conditions []string, limit, offset *int) string {
	columnsStr := "*"
	if len(columns) > 0 {
		columnsStr = strings.Join(columns, ", ")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(columnsStr)
	sb.WriteString(" FROM ")
	sb.WriteString(table)

	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	if limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(*limit))
	}
	if offset != nil {
		sb.WriteString(" OFFSET ")
		sb.WriteString(strconv.Itoa(*offset))
	}
	return sb.String()
}

// BuildInsertQuery composes an INSERT statement whose placeholder list
// mirrors the column list order, numbered from 1.
func (b Postgres) BuildInsertQuery(table string, columns []string, returning bool) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = b.Placeholder(i + 1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	if returning {
		query += " RETURNING *"
	}
	return query
}

// BuildUpdateQuery composes an UPDATE statement. The id placeholder is always
// the column count plus one, so callers bind the id value last.
func (b Postgres) BuildUpdateQuery(table string, columns []string, returning bool) string {
	setClauses := make([]string, len(columns))
	for i, col := range columns {
		setClauses[i] = fmt.Sprintf("%s = %s", col, b.Placeholder(i+1))
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = %s",
		table, strings.Join(setClauses, ", "), b.Placeholder(len(columns)+1))
	if returning {
		query += " RETURNING *"
	}
	return query
}

// BuildDeleteQuery composes a hard delete, or a soft delete guarded by
// deleted_at IS NULL so that re-deleting an already deleted row affects
// zero rows instead of erroring.
func (Postgres) BuildDeleteQuery(table string, softDelete bool) string {
	if softDelete {
		return fmt.Sprintf("UPDATE %s SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL", table)
	}
	return fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
}

// BuildRestoreQuery composes the statement that clears a soft-delete marker
// and refreshes updated_at, returning the restored row.
func (Postgres) BuildRestoreQuery(table string) string {
	return fmt.Sprintf("UPDATE %s SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 RETURNING *", table)
}

// ColumnKind is a portable column type name used by schema definitions.
type ColumnKind string

const (
	KindInt      ColumnKind = "int"
	KindBigInt   ColumnKind = "bigint"
	KindString   ColumnKind = "string"
	KindText     ColumnKind = "text"
	KindBool     ColumnKind = "bool"
	KindFloat    ColumnKind = "float"
	KindDouble   ColumnKind = "double"
	KindDecimal  ColumnKind = "decimal"
	KindTime     ColumnKind = "timestamptz"
	KindDate     ColumnKind = "date"
	KindTimeOnly ColumnKind = "time"
	KindJSON     ColumnKind = "json"
)

// ColumnType maps a portable column kind to the PostgreSQL column type.
// Unknown kinds fall back to VARCHAR.
func (Postgres) ColumnType(kind ColumnKind) string {
	switch kind {
	case KindInt:
		return "INTEGER"
	case KindBigInt:
		return "BIGINT"
	case KindString:
		return "VARCHAR"
	case KindText:
		return "TEXT"
	case KindBool:
		return "BOOLEAN"
	case KindFloat:
		return "REAL"
	case KindDouble:
		return "DOUBLE PRECISION"
	case KindDecimal:
		return "DECIMAL"
	case KindTime:
		return "TIMESTAMP WITH TIME ZONE"
	case KindDate:
		return "DATE"
	case KindTimeOnly:
		return "TIME"
	case KindJSON:
		return "JSONB"
	default:
		return "VARCHAR"
	}
}

// ColumnDef describes one column of a table schema for DDL generation.
type ColumnDef struct {
	Name       string
	Kind       ColumnKind
	PrimaryKey bool
	NotNull    bool
	Default    string
}

// BuildCreateTableQuery composes CREATE TABLE IF NOT EXISTS DDL from column
// definitions. Integer primary keys render as auto-incrementing serials.
func (b Postgres) BuildCreateTableQuery(table string, columns []ColumnDef) string {
	defs := make([]string, 0, len(columns))
	for _, col := range columns {
		var def string
		switch {
		case col.PrimaryKey && col.Kind == KindBigInt:
			def = col.Name + " BIGSERIAL PRIMARY KEY"
		case col.PrimaryKey && col.Kind == KindInt:
			def = col.Name + " SERIAL PRIMARY KEY"
		case col.PrimaryKey:
			def = fmt.Sprintf("%s %s PRIMARY KEY", col.Name, b.ColumnType(col.Kind))
		default:
			def = fmt.Sprintf("%s %s", col.Name, b.ColumnType(col.Kind))
			if col.NotNull {
				def += " NOT NULL"
			}
			if col.Default != "" {
				def += " DEFAULT " + col.Default
			}
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(defs, ", "))
}
