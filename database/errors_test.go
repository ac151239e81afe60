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

package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

func TestIsSQLErrorPostgres(t *testing.T) {
	tests := []struct {
		code pq.ErrorCode
		want SQLError
	}{
		{"23505", DuplicateKeyErr},
		{"23502", NotNullViolationErr},
		{"23503", ForeignKeyViolationErr},
		{"42P01", NoTableErr},
		{"42703", NoColumnErr},
		{"99999", UnknownErr},
	}
	for _, tt := range tests {
		is, kind := IsSQLError(&pq.Error{Code: tt.code})
		if !is || kind != tt.want {
			t.Errorf("pq code %s = (%v, %v), want (true, %v)", tt.code, is, kind, tt.want)
		}
	}
}

func TestIsSQLErrorMySQL(t *testing.T) {
	tests := []struct {
		number uint16
		want   SQLError
	}{
		{1062, DuplicateKeyErr},
		{1048, NotNullViolationErr},
		{1452, ForeignKeyViolationErr},
		{1146, NoTableErr},
	}
	for _, tt := range tests {
		is, kind := IsSQLError(&mysql.MySQLError{Number: tt.number})
		if !is || kind != tt.want {
			t.Errorf("mysql %d = (%v, %v), want (true, %v)", tt.number, is, kind, tt.want)
		}
	}
}

func TestIsSQLErrorStringFallback(t *testing.T) {
	is, kind := IsSQLError(errors.New("UNIQUE constraint failed: users.email"))
	if !is || kind != DuplicateKeyErr {
		t.Errorf("sqlite unique = (%v, %v)", is, kind)
	}

	is, kind = IsSQLError(errors.New("no such table: users"))
	if !is || kind != NoTableErr {
		t.Errorf("sqlite no table = (%v, %v)", is, kind)
	}

	if is, _ := IsSQLError(errors.New("connection refused")); is {
		t.Error("unrelated errors should not classify")
	}
	if is, _ := IsSQLError(nil); is {
		t.Error("nil should not classify")
	}
}

func TestIsConflictError(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})
	if !IsConflictError(wrapped) {
		t.Error("wrapped duplicate key should be a conflict")
	}
	if IsConflictError(&pq.Error{Code: "23503"}) {
		t.Error("foreign key violation is not a conflict")
	}
}

func TestIsConstraintViolation(t *testing.T) {
	for _, code := range []pq.ErrorCode{"23505", "23502", "23503", "23514"} {
		if !IsConstraintViolation(&pq.Error{Code: code}) {
			t.Errorf("code %s should be a constraint violation", code)
		}
	}
	if IsConstraintViolation(&pq.Error{Code: "42P01"}) {
		t.Error("missing table is not a constraint violation")
	}
}
