// Package backend provides dialect-specific SQL text composition: positional
// placeholder tokens, SELECT/INSERT/UPDATE/DELETE statement builders, and
// column type mapping for DDL generation. Builders compose text only; they
// never execute statements and expect identifiers that were already validated
// against entity metadata.
package backend
