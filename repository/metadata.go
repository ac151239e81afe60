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
	"reflect"
	"sync"
)

// Metadata describes how one entity type maps onto its table: table name,
// soft-delete support, and which columns may be written, searched, and
// filtered. The column lists are deny-by-default allow-lists: a name not in
// the list is rejected, and an empty list rejects every name. The allow-list
// is the injection defense for identifiers, which are interpolated raw into
// statement text; only values are bound.
type Metadata struct {
	table         string
	softDelete    bool
	columns       []string
	columnSet     map[string]struct{}
	searchable    []string
	filterable    []string
	filterableSet map[string]struct{}
}

// MetadataOption configures Metadata at construction.
type MetadataOption func(*Metadata)

// WithSoftDelete marks the table as soft-deletable. The table must carry a
// nullable deleted_at column and an updated_at column.
func WithSoftDelete() MetadataOption {
	return func(m *Metadata) { m.softDelete = true }
}

// WithColumns sets the writable and sortable column allow-list.
func WithColumns(columns ...string) MetadataOption {
	return func(m *Metadata) { m.columns = columns }
}

// WithSearchable sets the columns matched by free-text queries. Without it,
// a text query matches nothing and is ignored.
func WithSearchable(fields ...string) MetadataOption {
	return func(m *Metadata) { m.searchable = fields }
}

// WithFilterable sets the columns accepted as exact-match filters. Without
// it, the column allow-list is used instead.
func WithFilterable(fields ...string) MetadataOption {
	return func(m *Metadata) { m.filterable = fields }
}

// NewMetadata builds entity metadata for the named table.
func NewMetadata(table string, opts ...MetadataOption) *Metadata {
	m := &Metadata{table: table}
	for _, opt := range opts {
		opt(m)
	}
	m.columnSet = toSet(m.columns)
	m.filterableSet = toSet(m.filterable)
	return m
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// TableName returns the table the entity maps to.
func (m *Metadata) TableName() string { return m.table }

// SoftDeleteEnabled reports whether soft deletion applies to the table.
func (m *Metadata) SoftDeleteEnabled() bool { return m.softDelete }

// Columns returns the writable column allow-list.
func (m *Metadata) Columns() []string { return m.columns }

// SearchableFields returns the columns matched by free-text queries.
func (m *Metadata) SearchableFields() []string { return m.searchable }

// FilterableFields returns the columns accepted as exact-match filters,
// falling back to the column allow-list.
func (m *Metadata) FilterableFields() []string {
	if len(m.filterable) > 0 {
		return m.filterable
	}
	return m.columns
}

// HasColumn reports whether the column is in the allow-list. An empty
// allow-list rejects every column.
func (m *Metadata) HasColumn(column string) bool {
	_, ok := m.columnSet[column]
	return ok
}

// IsFilterable reports whether the field may appear as an exact-match filter.
// Falls back to the column allow-list when no filterable list was set; with
// neither configured, every field is rejected.
func (m *Metadata) IsFilterable(field string) bool {
	if m.filterableSet != nil {
		_, ok := m.filterableSet[field]
		return ok
	}
	return m.HasColumn(field)
}

var metadataRegistry sync.Map // reflect.Type -> *Metadata

// Register associates metadata with the entity type T so services can look
// it up without threading it through every call site.
func Register[T any](meta *Metadata) {
	var zero T
	metadataRegistry.Store(reflect.TypeOf(zero), meta)
}

// MetadataFor returns the metadata registered for T.
func MetadataFor[T any]() (*Metadata, bool) {
	var zero T
	v, ok := metadataRegistry.Load(reflect.TypeOf(zero))
	if !ok {
		return nil, false
	}
	return v.(*Metadata), true
}
