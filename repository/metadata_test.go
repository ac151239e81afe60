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

import "testing"

func TestMetadataAllowLists(t *testing.T) {
	meta := userMetadata()

	if meta.TableName() != "users" {
		t.Errorf("TableName = %q", meta.TableName())
	}
	if !meta.SoftDeleteEnabled() {
		t.Error("soft delete should be enabled")
	}
	if !meta.HasColumn("email") {
		t.Error("email should be a known column")
	}
	if meta.HasColumn("password_hash") {
		t.Error("password_hash should be rejected")
	}
	if !meta.IsFilterable("status") || !meta.IsFilterable("role") {
		t.Error("status and role should be filterable")
	}
	// name is a column but not in the filterable allow-list
	if meta.IsFilterable("name") {
		t.Error("name should not be filterable")
	}
}

func TestMetadataDefaults(t *testing.T) {
	meta := NewMetadata("events")

	if meta.SoftDeleteEnabled() {
		t.Error("soft delete should default off")
	}
	// No allow-lists configured: every identifier is rejected.
	if meta.HasColumn("anything") {
		t.Error("empty column list should reject every column")
	}
	if meta.IsFilterable("anything") {
		t.Error("empty allow-lists should reject every filter")
	}
	if meta.IsFilterable("bogus; DROP TABLE events; --") {
		t.Error("hostile identifier should be rejected")
	}
	if len(meta.SearchableFields()) != 0 {
		t.Errorf("SearchableFields = %v, want none", meta.SearchableFields())
	}
}

func TestMetadataFilterableFallsBackToColumns(t *testing.T) {
	meta := NewMetadata("events", WithColumns("id", "kind"))

	if !meta.IsFilterable("kind") {
		t.Error("kind should be filterable via the column list")
	}
	if meta.IsFilterable("payload") {
		t.Error("payload is not a column and should be rejected")
	}
}

type registryEntity struct {
	ID int64 `db:"id"`
}

func TestMetadataRegistry(t *testing.T) {
	if _, ok := MetadataFor[registryEntity](); ok {
		t.Fatal("metadata should not be registered yet")
	}

	meta := NewMetadata("registry_entities", WithSoftDelete())
	Register[registryEntity](meta)

	got, ok := MetadataFor[registryEntity]()
	if !ok {
		t.Fatal("metadata should be registered")
	}
	if got != meta {
		t.Error("registry should return the registered metadata")
	}
}
