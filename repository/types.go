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
	"context"
	"database/sql"

	"github.com/kestreldb/kestrel/types"
)

// Executor runs statements against a database. *sql.DB, *sql.Tx, and *bun.DB
// all satisfy it, so repositories work over the managed Bun connection and
// inside transactions alike.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// FieldValue is one column assignment for Create and Update. Assignments are
// kept ordered so a given input always renders the same statement.
type FieldValue struct {
	Column string
	Value  interface{}
}

// ReadRepository defines lookup operations for a generic entity type.
// FindByID returns (nil, nil) when no visible row has the id; absence is not
// an error at this layer. Ids are opaque to the repository and are always
// bound as statement parameters, so integer and uuid keys work alike.
type ReadRepository[T any] interface {
	FindByID(ctx context.Context, id interface{}) (*T, error)

	FindAll(ctx context.Context) ([]T, error)

	Count(ctx context.Context, params *types.SearchParams) (int64, error)
}

// SearchRepository defines paginated search for a generic entity type.
// Search runs the count and fetch as two independent statements with no
// transaction, so under concurrent writes the total may reflect a different
// snapshot than the items. Callers needing snapshot consistency can run the
// repository over an *sql.Tx.
type SearchRepository[T any] interface {
	Search(ctx context.Context, params *types.SearchParams) (*types.SearchResult[T], error)
}

// WriteRepository defines mutation operations for a generic entity type.
// Delete soft-deletes when the metadata enables it and hard-deletes
// otherwise; HardDelete always removes the row. Update and Restore return
// (nil, nil) when the id does not match a row.
type WriteRepository[T any] interface {
	Create(ctx context.Context, fields []FieldValue) (*T, error)

	Update(ctx context.Context, id interface{}, fields []FieldValue) (*T, error)

	Delete(ctx context.Context, id interface{}) (bool, error)

	Restore(ctx context.Context, id interface{}) (*T, error)

	HardDelete(ctx context.Context, id interface{}) (bool, error)
}

// Repository combines lookup, search, and mutation operations.
type Repository[T any] interface {
	ReadRepository[T]
	SearchRepository[T]
	WriteRepository[T]
}
