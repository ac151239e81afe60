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
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/kestreldb/kestrel/backend"
)

// MigrationManager creates the tables described by the registered schemas,
// in priority order. DDL is rendered for the dialect the manager was
// connected with.
type MigrationManager struct {
	db     *bun.DB
	dbType string
	logger Logger
}

// NewMigrationManager returns a migration manager for the given connection.
func NewMigrationManager(db *bun.DB, dbType string, logger Logger) *MigrationManager {
	if logger == nil {
		logger = GetLogger()
	}
	return &MigrationManager{db: db, dbType: dbType, logger: logger}
}

// RunMigrations executes CREATE TABLE IF NOT EXISTS for every registered
// schema. Failure on one table aborts the run so priority ordering holds.
func (m *MigrationManager) RunMigrations(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database instance not initialized")
	}

	schemas := RegisteredSchemas()
	if len(schemas) == 0 {
		m.logger.Info("No table schemas registered, skipping migrations")
		return nil
	}

	m.logger.Info("Running schema migrations", "tables", len(schemas), "dialect", m.dbType)
	for _, schema := range schemas {
		ddl, err := m.buildCreateTable(schema)
		if err != nil {
			return err
		}
		if _, err := m.db.ExecContext(ctx, ddl); err != nil {
			m.logger.Error("Failed to create table", "table", schema.Table, "error", err)
			return fmt.Errorf("failed to create table %s: %w", schema.Table, err)
		}
		m.logger.Info("Table ready", "table", schema.Table)
	}
	return nil
}

func (m *MigrationManager) buildCreateTable(schema TableSchema) (string, error) {
	switch m.dbType {
	case "postgres", "postgresql":
		return backend.Default.BuildCreateTableQuery(schema.Table, schema.Columns), nil
	case "mysql":
		return buildGenericCreateTable(schema, mysqlColumnType, "AUTO_INCREMENT"), nil
	case "sqlite", "sqlite3":
		return buildGenericCreateTable(schema, sqliteColumnType, "AUTOINCREMENT"), nil
	default:
		return "", fmt.Errorf("unsupported database type for migrations: %s", m.dbType)
	}
}

func buildGenericCreateTable(schema TableSchema, typeOf func(backend.ColumnKind) string, autoInc string) string {
	defs := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		var def string
		switch {
		case col.PrimaryKey && (col.Kind == backend.KindInt || col.Kind == backend.KindBigInt):
			def = fmt.Sprintf("%s %s PRIMARY KEY %s", col.Name, typeOf(col.Kind), autoInc)
		case col.PrimaryKey:
			def = fmt.Sprintf("%s %s PRIMARY KEY", col.Name, typeOf(col.Kind))
		default:
			def = fmt.Sprintf("%s %s", col.Name, typeOf(col.Kind))
			if col.NotNull {
				def += " NOT NULL"
			}
			if col.Default != "" {
				def += " DEFAULT " + col.Default
			}
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", schema.Table, strings.Join(defs, ", "))
}

func mysqlColumnType(kind backend.ColumnKind) string {
	switch kind {
	case backend.KindInt:
		return "INT"
	case backend.KindBigInt:
		return "BIGINT"
	case backend.KindString:
		return "VARCHAR(255)"
	case backend.KindText:
		return "TEXT"
	case backend.KindBool:
		return "TINYINT(1)"
	case backend.KindFloat:
		return "FLOAT"
	case backend.KindDouble:
		return "DOUBLE"
	case backend.KindDecimal:
		return "DECIMAL(20,6)"
	case backend.KindTime:
		return "DATETIME"
	case backend.KindDate:
		return "DATE"
	case backend.KindTimeOnly:
		return "TIME"
	case backend.KindJSON:
		return "JSON"
	default:
		return "VARCHAR(255)"
	}
}

func sqliteColumnType(kind backend.ColumnKind) string {
	switch kind {
	case backend.KindInt, backend.KindBigInt, backend.KindBool:
		return "INTEGER"
	case backend.KindFloat, backend.KindDouble, backend.KindDecimal:
		return "REAL"
	case backend.KindTime, backend.KindDate, backend.KindTimeOnly:
		return "TEXT"
	case backend.KindJSON:
		return "TEXT"
	default:
		return "TEXT"
	}
}
