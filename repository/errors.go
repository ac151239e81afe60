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
	"errors"
	"fmt"
)

// ErrorKind classifies repository failures so callers can branch on the
// class instead of matching error strings.
type ErrorKind int

const (
	ErrDatabase ErrorKind = iota
	ErrNotFound
	ErrValidation
	ErrConflict
	ErrConfiguration
	ErrUnsupportedFeature
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNotFound:
		return "not_found"
	case ErrValidation:
		return "validation"
	case ErrConflict:
		return "conflict"
	case ErrConfiguration:
		return "configuration"
	case ErrUnsupportedFeature:
		return "unsupported_feature"
	default:
		return "database"
	}
}

// Error is the error type returned by every repository operation. Not every
// field is set for every kind: Entity/Field/Value describe not-found lookups,
// Feature/Backend describe unsupported-feature failures.
type Error struct {
	Kind    ErrorKind
	Message string
	Entity  string
	Field   string
	Value   string
	Feature string
	Backend string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("%s with %s = %s not found", e.Entity, e.Field, e.Value)
	case ErrValidation:
		return fmt.Sprintf("validation error: %s", e.Message)
	case ErrConflict:
		return fmt.Sprintf("conflict: %s", e.Message)
	case ErrConfiguration:
		return fmt.Sprintf("configuration error: %s", e.Message)
	case ErrUnsupportedFeature:
		return fmt.Sprintf("feature %s is not supported by backend %s", e.Feature, e.Backend)
	default:
		if e.Err != nil {
			return fmt.Sprintf("database error: %v", e.Err)
		}
		return fmt.Sprintf("database error: %s", e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// NewDatabaseError wraps a driver failure.
func NewDatabaseError(err error) *Error {
	return &Error{Kind: ErrDatabase, Err: err}
}

// NewNotFoundError reports that no row of entity matched field = value.
func NewNotFoundError(entity, field, value string) *Error {
	return &Error{Kind: ErrNotFound, Entity: entity, Field: field, Value: value}
}

// NewValidationError reports rejected input, for example an unknown column.
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NewConflictError reports a uniqueness violation.
func NewConflictError(message string, err error) *Error {
	return &Error{Kind: ErrConflict, Message: message, Err: err}
}

// NewConfigurationError reports an operation invoked against a repository
// whose metadata does not support it.
func NewConfigurationError(message string) *Error {
	return &Error{Kind: ErrConfiguration, Message: message}
}

// NewUnsupportedFeatureError reports a feature the current backend cannot
// express.
func NewUnsupportedFeatureError(feature, backendName string) *Error {
	return &Error{Kind: ErrUnsupportedFeature, Feature: feature, Backend: backendName}
}

// KindOf extracts the error kind from err, reporting ok=false when err is not
// a repository error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return ErrDatabase, false
}

// IsNotFound reports whether err is a not-found repository error.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == ErrNotFound
}

// IsValidation reports whether err is a validation repository error.
func IsValidation(err error) bool {
	k, ok := KindOf(err)
	return ok && k == ErrValidation
}

// IsConflict reports whether err is a conflict repository error.
func IsConflict(err error) bool {
	k, ok := KindOf(err)
	return ok && k == ErrConflict
}

// IsConfiguration reports whether err is a configuration repository error.
func IsConfiguration(err error) bool {
	k, ok := KindOf(err)
	return ok && k == ErrConfiguration
}
