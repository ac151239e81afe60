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
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kestreldb/kestrel/backend"
	"github.com/kestreldb/kestrel/database"
	"github.com/kestreldb/kestrel/types"
)

type baseRepository[T any] struct {
	exec    Executor
	meta    *Metadata
	backend backend.Postgres
	logger  database.Logger
}

// New returns a repository for T backed by the given executor and metadata.
func New[T any](exec Executor, meta *Metadata) Repository[T] {
	return &baseRepository[T]{
		exec:    exec,
		meta:    meta,
		backend: backend.Default,
		logger:  database.GetLogger(),
	}
}

func (r *baseRepository[T]) Create(ctx context.Context, fields []FieldValue) (*T, error) {
	if len(fields) == 0 {
		return nil, NewValidationError("no fields provided for insert")
	}
	columns := make([]string, len(fields))
	values := make([]interface{}, len(fields))
	for i, f := range fields {
		if !r.meta.HasColumn(f.Column) {
			return nil, NewValidationError(fmt.Sprintf("unknown column: %s", f.Column))
		}
		columns[i] = f.Column
		values[i] = f.Value
	}

	query := r.backend.BuildInsertQuery(r.meta.TableName(), columns, true)
	entity, err := r.queryRow(ctx, query, values)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, NewDatabaseError(errors.New("insert returned no row"))
	}
	return entity, nil
}

func (r *baseRepository[T]) Update(ctx context.Context, id interface{}, fields []FieldValue) (*T, error) {
	if len(fields) == 0 {
		return nil, NewValidationError("no fields provided for update")
	}
	columns := make([]string, len(fields))
	values := make([]interface{}, 0, len(fields)+1)
	for i, f := range fields {
		if !r.meta.HasColumn(f.Column) {
			return nil, NewValidationError(fmt.Sprintf("unknown column: %s", f.Column))
		}
		columns[i] = f.Column
		values = append(values, f.Value)
	}
	values = append(values, id)

	query := r.backend.BuildUpdateQuery(r.meta.TableName(), columns, true)
	return r.queryRow(ctx, query, values)
}

func (r *baseRepository[T]) FindByID(ctx context.Context, id interface{}) (*T, error) {
	conditions := []string{"id = " + r.backend.Placeholder(1)}
	if r.meta.SoftDeleteEnabled() {
		conditions = append(conditions, "deleted_at IS NULL")
	}
	query := r.backend.BuildSelectQuery(r.meta.TableName(), nil, conditions, nil, nil)
	return r.queryRow(ctx, query, []interface{}{id})
}

func (r *baseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var conditions []string
	if r.meta.SoftDeleteEnabled() {
		conditions = append(conditions, "deleted_at IS NULL")
	}
	query := r.backend.BuildSelectQuery(r.meta.TableName(), nil, conditions, nil, nil) + " ORDER BY id"

	rows, err := r.query(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	items, err := scanRows[T](rows)
	if err != nil {
		return nil, NewDatabaseError(err)
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (r *baseRepository[T]) Search(ctx context.Context, params *types.SearchParams) (*types.SearchResult[T], error) {
	if params == nil {
		params = types.NewSearchParams()
	}
	if params.SortBy != "" && !r.meta.HasColumn(params.SortBy) {
		return nil, NewValidationError(fmt.Sprintf("unknown sort field: %s", params.SortBy))
	}

	totalCount, err := r.count(ctx, params)
	if err != nil {
		return nil, err
	}

	set := buildConditions(r.backend, r.meta, params)
	query := r.backend.BuildSelectQuery(r.meta.TableName(), nil, set.conditions, nil, nil) +
		fmt.Sprintf(" ORDER BY %s %s LIMIT %d OFFSET %d",
			params.SortField(), params.SortOrder, params.PerPage, params.Offset())

	rows, err := r.query(ctx, query, set.values)
	if err != nil {
		return nil, err
	}
	items, err := scanRows[T](rows)
	if err != nil {
		return nil, NewDatabaseError(err)
	}

	return types.NewSearchResult(items, totalCount, params.Page, params.PerPage), nil
}

func (r *baseRepository[T]) Count(ctx context.Context, params *types.SearchParams) (int64, error) {
	if params == nil {
		params = types.NewSearchParams()
	}
	return r.count(ctx, params)
}

func (r *baseRepository[T]) count(ctx context.Context, params *types.SearchParams) (int64, error) {
	set := buildConditions(r.backend, r.meta, params)
	query := r.backend.BuildSelectQuery(r.meta.TableName(), []string{"COUNT(*)"}, set.conditions, nil, nil)

	rows, err := r.query(ctx, query, set.values)
	if err != nil {
		return 0, err
	}
	defer func() { _ = rows.Close() }()

	var totalCount int64
	if rows.Next() {
		if err := rows.Scan(&totalCount); err != nil {
			return 0, NewDatabaseError(err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, NewDatabaseError(err)
	}
	return totalCount, nil
}

// Delete soft-deletes when the metadata enables soft deletion, otherwise it
// removes the row. It reports whether a row was affected; deleting an
// already deleted or missing row reports false without error.
func (r *baseRepository[T]) Delete(ctx context.Context, id interface{}) (bool, error) {
	query := r.backend.BuildDeleteQuery(r.meta.TableName(), r.meta.SoftDeleteEnabled())
	return r.execAffected(ctx, query, id)
}

func (r *baseRepository[T]) Restore(ctx context.Context, id interface{}) (*T, error) {
	if !r.meta.SoftDeleteEnabled() {
		return nil, NewConfigurationError(
			fmt.Sprintf("soft delete is not enabled for table %s", r.meta.TableName()))
	}
	query := r.backend.BuildRestoreQuery(r.meta.TableName())
	return r.queryRow(ctx, query, []interface{}{id})
}

// HardDelete removes the row regardless of soft-delete configuration.
func (r *baseRepository[T]) HardDelete(ctx context.Context, id interface{}) (bool, error) {
	query := r.backend.BuildDeleteQuery(r.meta.TableName(), false)
	return r.execAffected(ctx, query, id)
}

func (r *baseRepository[T]) query(ctx context.Context, query string, args []interface{}) (*sql.Rows, error) {
	queryID := uuid.NewString()[:8]
	r.logger.Debug("Executing query", "query_id", queryID, "table", r.meta.TableName(), "sql", query)

	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Query failed", "query_id", queryID, "table", r.meta.TableName(), "error", err)
		return nil, r.wrapExecError(err)
	}
	return rows, nil
}

// queryRow returns the single row a statement yields, or (nil, nil) when no
// row matched. Absence is not an error at this layer; callers that need a
// not-found error map nil themselves.
func (r *baseRepository[T]) queryRow(ctx context.Context, query string, args []interface{}) (*T, error) {
	rows, err := r.query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	entity, err := scanOne[T](rows)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.wrapExecError(err)
	}
	return entity, nil
}

func (r *baseRepository[T]) execAffected(ctx context.Context, query string, id interface{}) (bool, error) {
	queryID := uuid.NewString()[:8]
	r.logger.Debug("Executing statement", "query_id", queryID, "table", r.meta.TableName(), "sql", query)

	result, err := r.exec.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Statement failed", "query_id", queryID, "table", r.meta.TableName(), "error", err)
		return false, r.wrapExecError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, NewDatabaseError(err)
	}
	return affected > 0, nil
}

func (r *baseRepository[T]) wrapExecError(err error) error {
	if database.IsConflictError(err) {
		return NewConflictError(fmt.Sprintf("duplicate value for table %s", r.meta.TableName()), err)
	}
	return NewDatabaseError(err)
}
