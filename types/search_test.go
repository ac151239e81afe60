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

package types

import "testing"

func TestNewSearchParamsDefaults(t *testing.T) {
	p := NewSearchParams()

	if p.Query != "" {
		t.Errorf("Query = %q, want empty", p.Query)
	}
	if len(p.Filters) != 0 {
		t.Errorf("Filters = %v, want none", p.Filters)
	}
	if p.Page != 0 {
		t.Errorf("Page = %d, want 0", p.Page)
	}
	if p.PerPage != 10 {
		t.Errorf("PerPage = %d, want 10", p.PerPage)
	}
	if p.SortField() != "id" {
		t.Errorf("SortField = %q, want id", p.SortField())
	}
	if p.SortOrder != SortAsc {
		t.Errorf("SortOrder = %v, want SortAsc", p.SortOrder)
	}
	if p.Scope != ScopeActive {
		t.Errorf("Scope = %v, want ScopeActive", p.Scope)
	}
}

func TestSearchParamsBuilder(t *testing.T) {
	p := NewSearchParams().
		WithQuery("john").
		WithFilter("status", "active").
		WithFilter("role", "admin").
		WithPage(2).
		WithPerPage(25).
		WithSort("created_at", SortDesc).
		WithScope(ScopeAll)

	if p.Query != "john" {
		t.Errorf("Query = %q", p.Query)
	}
	if len(p.Filters) != 2 {
		t.Fatalf("len(Filters) = %d, want 2", len(p.Filters))
	}
	// Filters keep insertion order.
	if p.Filters[0] != (Filter{Field: "status", Value: "active"}) {
		t.Errorf("Filters[0] = %v", p.Filters[0])
	}
	if p.Filters[1] != (Filter{Field: "role", Value: "admin"}) {
		t.Errorf("Filters[1] = %v", p.Filters[1])
	}
	if p.Page != 2 || p.PerPage != 25 {
		t.Errorf("Page = %d, PerPage = %d", p.Page, p.PerPage)
	}
	if p.SortField() != "created_at" || p.SortOrder != SortDesc {
		t.Errorf("sort = %s %s", p.SortField(), p.SortOrder)
	}
	if p.Scope != ScopeAll {
		t.Errorf("Scope = %v", p.Scope)
	}
}

func TestSearchParamsClamping(t *testing.T) {
	p := NewSearchParams().WithPage(-5).WithPerPage(-1)
	if p.Page != 0 {
		t.Errorf("Page = %d, want 0", p.Page)
	}
	if p.PerPage != 0 {
		t.Errorf("PerPage = %d, want 0", p.PerPage)
	}
}

func TestSearchParamsOffset(t *testing.T) {
	tests := []struct {
		page, perPage, want int
	}{
		{0, 10, 0},
		{1, 10, 10},
		{3, 25, 75},
		{5, 0, 0},
	}
	for _, tt := range tests {
		p := NewSearchParams().WithPage(tt.page).WithPerPage(tt.perPage)
		if got := p.Offset(); got != tt.want {
			t.Errorf("Offset(page=%d, perPage=%d) = %d, want %d", tt.page, tt.perPage, got, tt.want)
		}
	}
}

func TestSortOrderString(t *testing.T) {
	if SortAsc.String() != "ASC" || SortDesc.String() != "DESC" {
		t.Errorf("SortOrder strings = %q, %q", SortAsc.String(), SortDesc.String())
	}
	if ParseSortOrder("desc") != SortDesc {
		t.Error(`ParseSortOrder("desc") != SortDesc`)
	}
	if ParseSortOrder("DESC") != SortDesc {
		t.Error(`ParseSortOrder("DESC") != SortDesc`)
	}
	if ParseSortOrder("sideways") != SortAsc {
		t.Error("unknown order should default to ascending")
	}
}

func TestParseRecordScope(t *testing.T) {
	tests := map[string]RecordScope{
		"active":  ScopeActive,
		"deleted": ScopeDeleted,
		"all":     ScopeAll,
		"":        ScopeActive,
		"bogus":   ScopeActive,
	}
	for in, want := range tests {
		if got := ParseRecordScope(in); got != want {
			t.Errorf("ParseRecordScope(%q) = %v, want %v", in, got, want)
		}
	}
}
