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

package kestrel

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/iancoleman/strcase"

	"github.com/kestreldb/kestrel/database"
	"github.com/kestreldb/kestrel/repository"
	"github.com/kestreldb/kestrel/types"
)

type Service[T any] interface {
	// Get returns a single entity by its identifier. A missing entity is a
	// not-found error at this layer. Ids are bound, never interpolated, so
	// integer and uuid keys both work.
	Get(ctx context.Context, id interface{}) (*T, error)

	// All returns all entities ordered by id.
	All(ctx context.Context) ([]T, error)

	// Search returns a page of entities matching the search parameters.
	Search(ctx context.Context, params *types.SearchParams) (*types.SearchResult[T], error)

	// Count returns the number of entities matching the search parameters.
	Count(ctx context.Context, params *types.SearchParams) (int64, error)

	// Save inserts a new entity from ordered column assignments.
	Save(ctx context.Context, fields []repository.FieldValue) (*T, error)

	// Update modifies an existing entity by id.
	Update(ctx context.Context, id interface{}, fields []repository.FieldValue) (*T, error)

	// Delete removes an entity by id, soft-deleting when configured.
	Delete(ctx context.Context, id interface{}) (bool, error)

	// Restore clears the soft-delete marker of an entity.
	Restore(ctx context.Context, id interface{}) (*T, error)

	// Purge permanently removes an entity regardless of soft deletion.
	Purge(ctx context.Context, id interface{}) (bool, error)

	// Repository exposes the underlying generic repository.
	Repository() repository.Repository[T]
}

type baseServiceImpl[T any] struct {
	repo repository.Repository[T]
	once sync.Once
}

// NewService returns a Service for T backed by the global database
// connection. Metadata registered via repository.Register is used when
// present; otherwise the table name is derived from the type name and the
// column allow-list from T's struct fields, so identifier validation stays
// on for unregistered types.
func NewService[T any]() Service[T] {
	return &baseServiceImpl[T]{}
}

func (s *baseServiceImpl[T]) baseRepo() repository.Repository[T] {
	s.once.Do(func() {
		meta, ok := repository.MetadataFor[T]()
		if !ok {
			meta = repository.NewMetadata(defaultTableName[T](),
				repository.WithColumns(repository.ColumnsFor[T]()...))
		}
		s.repo = repository.New[T](database.GetDB(), meta)
	})
	return s.repo
}

// defaultTableName derives a table name from the entity type: snake_cased
// and pluralized with a trailing s.
func defaultTableName[T any]() string {
	var zero T
	return strcase.ToSnake(reflect.TypeOf(zero).Name()) + "s"
}

func (s *baseServiceImpl[T]) Get(ctx context.Context, id interface{}) (*T, error) {
	entity, err := s.baseRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, s.notFound(id)
	}
	return entity, nil
}

func (s *baseServiceImpl[T]) All(ctx context.Context) ([]T, error) {
	return s.baseRepo().FindAll(ctx)
}

func (s *baseServiceImpl[T]) Search(ctx context.Context, params *types.SearchParams) (*types.SearchResult[T], error) {
	return s.baseRepo().Search(ctx, params)
}

func (s *baseServiceImpl[T]) Count(ctx context.Context, params *types.SearchParams) (int64, error) {
	return s.baseRepo().Count(ctx, params)
}

func (s *baseServiceImpl[T]) Save(ctx context.Context, fields []repository.FieldValue) (*T, error) {
	return s.baseRepo().Create(ctx, fields)
}

func (s *baseServiceImpl[T]) Update(ctx context.Context, id interface{}, fields []repository.FieldValue) (*T, error) {
	entity, err := s.baseRepo().Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, s.notFound(id)
	}
	return entity, nil
}

func (s *baseServiceImpl[T]) Delete(ctx context.Context, id interface{}) (bool, error) {
	return s.baseRepo().Delete(ctx, id)
}

func (s *baseServiceImpl[T]) Restore(ctx context.Context, id interface{}) (*T, error) {
	entity, err := s.baseRepo().Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, s.notFound(id)
	}
	return entity, nil
}

func (s *baseServiceImpl[T]) Purge(ctx context.Context, id interface{}) (bool, error) {
	return s.baseRepo().HardDelete(ctx, id)
}

func (s *baseServiceImpl[T]) Repository() repository.Repository[T] {
	return s.baseRepo()
}

func (s *baseServiceImpl[T]) notFound(id interface{}) error {
	meta, ok := repository.MetadataFor[T]()
	table := ""
	if ok {
		table = meta.TableName()
	} else {
		table = defaultTableName[T]()
	}
	return repository.NewNotFoundError(table, "id", fmt.Sprintf("%v", id))
}
