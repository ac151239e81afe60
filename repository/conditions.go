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
	"fmt"
	"strings"

	"github.com/kestreldb/kestrel/backend"
	"github.com/kestreldb/kestrel/types"
)

// conditionSet holds WHERE fragments and their bind values in matching order.
// Placeholders are numbered from 1 within the set, so the count and fetch
// statements of a search can each be rendered from a fresh set and end up
// with consistent numbering.
type conditionSet struct {
	conditions []string
	values     []interface{}
}

// buildConditions assembles the WHERE fragments for a search in a fixed
// order: soft-delete scope first (no bind value), then the free-text match
// (one shared bind), then exact-match filters in insertion order. Filters on
// fields that are not filterable are dropped silently. Building the same
// parameters twice yields byte-identical fragments.
func buildConditions(b backend.Postgres, meta *Metadata, params *types.SearchParams) conditionSet {
	var set conditionSet
	if params == nil {
		params = types.NewSearchParams()
	}

	if meta.SoftDeleteEnabled() {
		switch params.Scope {
		case types.ScopeDeleted:
			set.conditions = append(set.conditions, "deleted_at IS NOT NULL")
		case types.ScopeAll:
			// no scope condition
		default:
			set.conditions = append(set.conditions, "deleted_at IS NULL")
		}
	}

	query := strings.TrimSpace(params.Query)
	searchable := meta.SearchableFields()
	if query != "" && len(searchable) > 0 {
		set.values = append(set.values, "%"+query+"%")
		placeholder := b.Placeholder(len(set.values))
		matches := make([]string, len(searchable))
		for i, field := range searchable {
			matches[i] = fmt.Sprintf("%s ILIKE %s", field, placeholder)
		}
		set.conditions = append(set.conditions, "("+strings.Join(matches, " OR ")+")")
	}

	for _, filter := range params.Filters {
		if !meta.IsFilterable(filter.Field) {
			continue
		}
		set.values = append(set.values, filter.Value)
		set.conditions = append(set.conditions,
			fmt.Sprintf("%s = %s", filter.Field, b.Placeholder(len(set.values))))
	}

	return set
}
