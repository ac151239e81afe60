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
	"sort"
	"sync"

	"github.com/kestreldb/kestrel/backend"
)

var defaultSchemaRegistry = newSchemaRegistry()

// TableSchema describes a table to be created by the migration bootstrap.
// Priority controls ordering when creating tables (lower values first), so
// referenced tables can be created before the tables that reference them.
type TableSchema struct {
	Table    string
	Columns  []backend.ColumnDef
	Priority int
}

// SchemaRegistry stores table schemas and exposes them in a deterministic
// order.
type SchemaRegistry interface {
	Register(schema TableSchema)
	Schemas() []TableSchema
}

type schemaRegistry struct {
	schemas []TableSchema
	mutex   sync.RWMutex
}

func newSchemaRegistry() SchemaRegistry {
	return &schemaRegistry{
		schemas: make([]TableSchema, 0),
	}
}

func (r *schemaRegistry) Register(schema TableSchema) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.schemas = append(r.schemas, schema)
}

func (r *schemaRegistry) Schemas() []TableSchema {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]TableSchema, len(r.schemas))
	copy(result, r.schemas)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority < result[j].Priority
	})
	return result
}

// RegisterSchema adds a table schema to the default registry. Typically
// called from init functions of packages that own tables.
func RegisterSchema(schema TableSchema) {
	defaultSchemaRegistry.Register(schema)
}

// RegisteredSchemas returns all schemas registered in the default registry
// sorted by ascending priority.
func RegisteredSchemas() []TableSchema {
	return defaultSchemaRegistry.Schemas()
}
