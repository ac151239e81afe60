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

// Filter is one exact-match field filter. Filters are kept as an ordered
// slice rather than a map so that rebuilding a statement from the same
// parameters always yields byte-identical SQL.
type Filter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SearchParams describes one search request: optional free-text query,
// exact-match filters, pagination, sorting, and soft-delete scope.
// Pages are 0-based.
type SearchParams struct {
	Query     string      `json:"query,omitempty"`
	Filters   []Filter    `json:"filters,omitempty"`
	Page      int         `json:"page"`
	PerPage   int         `json:"per_page"`
	SortBy    string      `json:"sort_by,omitempty"`
	SortOrder SortOrder   `json:"sort_order"`
	Scope     RecordScope `json:"scope"`
}

// NewSearchParams returns search parameters with the defaults: no query, no
// filters, page 0, 10 items per page, sorted by id ascending, active rows.
func NewSearchParams() *SearchParams {
	return &SearchParams{
		Page:      0,
		PerPage:   10,
		SortOrder: SortAsc,
		Scope:     ScopeActive,
	}
}

// WithQuery sets the free-text query.
func (p *SearchParams) WithQuery(query string) *SearchParams {
	p.Query = query
	return p
}

// WithFilter appends an exact-match filter. Filters are applied in the order
// they were added.
func (p *SearchParams) WithFilter(field, value string) *SearchParams {
	p.Filters = append(p.Filters, Filter{Field: field, Value: value})
	return p
}

// WithPage sets the 0-based page number; negative values are clamped to 0.
func (p *SearchParams) WithPage(page int) *SearchParams {
	if page < 0 {
		page = 0
	}
	p.Page = page
	return p
}

// WithPerPage sets the page size; negative values are clamped to 0.
func (p *SearchParams) WithPerPage(perPage int) *SearchParams {
	if perPage < 0 {
		perPage = 0
	}
	p.PerPage = perPage
	return p
}

// WithSort sets the sort field and direction.
func (p *SearchParams) WithSort(field string, order SortOrder) *SearchParams {
	p.SortBy = field
	p.SortOrder = order
	return p
}

// WithScope sets the soft-delete visibility scope.
func (p *SearchParams) WithScope(scope RecordScope) *SearchParams {
	p.Scope = scope
	return p
}

// SortField returns the sort column, defaulting to id when unset.
func (p *SearchParams) SortField() string {
	if p.SortBy == "" {
		return "id"
	}
	return p.SortBy
}

// Offset returns the row offset implied by page and page size.
func (p *SearchParams) Offset() int {
	return p.Page * p.PerPage
}
