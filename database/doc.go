// Package database provides connection management for PostgreSQL, MySQL, and
// SQLite built on top of Bun: configuration loading, pool tuning, health
// checks with bounded reconnect, query logging hooks, driver error
// classification, and a schema-based migration bootstrap.
package database
