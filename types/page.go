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

// SearchResult holds one page of items along with pagination metadata.
// Page is 0-based; TotalPages is derived once at construction.
type SearchResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// NewSearchResult constructs a result envelope, deriving total_pages as
// ceil(total_count / per_page), or 0 when per_page is 0.
func NewSearchResult[T any](items []T, totalCount int64, page, perPage int) *SearchResult[T] {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((totalCount + int64(perPage) - 1) / int64(perPage))
	}
	if items == nil {
		items = make([]T, 0)
	}
	return &SearchResult[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// HasNextPage reports whether pages exist after the current one.
func (r *SearchResult[T]) HasNextPage() bool {
	return r.Page+1 < r.TotalPages
}

// HasPreviousPage reports whether pages exist before the current one.
func (r *SearchResult[T]) HasPreviousPage() bool {
	return r.Page > 0
}
