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

import "strings"

// Common illegal/default values used by enums.
const (
	IllegalValue = -1
	IllegalName  = "unknown"
)

// BaseEnum represents a basic enum contract used by domain types.
type BaseEnum interface {
	IsValid() bool
	Number() int
	String() string
}

// SortOrder controls the direction of result ordering.
type SortOrder int

const (
	// SortAsc orders ascending (A-Z, 1-9). Default.
	SortAsc SortOrder = iota
	// SortDesc orders descending (Z-A, 9-1).
	SortDesc
)

func (s SortOrder) IsValid() bool { return s == SortAsc || s == SortDesc }

func (s SortOrder) Number() int { return int(s) }

// String returns the SQL keyword for the order; unknown values sort ascending.
func (s SortOrder) String() string {
	if s == SortDesc {
		return "DESC"
	}
	return "ASC"
}

// ParseSortOrder reads a sort order from its lowercase wire form ("asc",
// "desc"); anything else yields the ascending default.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return SortDesc
	}
	return SortAsc
}

// RecordScope selects which rows are visible with respect to soft deletion.
// It is a plain 3-state flag: it only decides whether a scope condition is
// appended to a statement.
type RecordScope int

const (
	// ScopeActive matches rows whose deleted_at is NULL. Default.
	ScopeActive RecordScope = iota
	// ScopeDeleted matches only soft-deleted rows.
	ScopeDeleted
	// ScopeAll matches every row regardless of deletion state.
	ScopeAll
)

func (s RecordScope) IsValid() bool {
	return s == ScopeActive || s == ScopeDeleted || s == ScopeAll
}

func (s RecordScope) Number() int { return int(s) }

func (s RecordScope) String() string {
	switch s {
	case ScopeDeleted:
		return "deleted"
	case ScopeAll:
		return "all"
	default:
		return "active"
	}
}

// ParseRecordScope reads a record scope from its lowercase wire form; unknown
// values yield the active default.
func ParseRecordScope(s string) RecordScope {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deleted":
		return ScopeDeleted
	case "all":
		return ScopeAll
	default:
		return ScopeActive
	}
}
