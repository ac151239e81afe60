// Package repository implements a generic SQL repository: dynamic statement
// construction with positional placeholders, paginated search with filtering
// and free-text matching, optional soft deletion with restore, and a typed
// error taxonomy. Statements are composed as plain text through the backend
// package and executed against anything that satisfies Executor, including
// *bun.DB and *sql.DB.
package repository
