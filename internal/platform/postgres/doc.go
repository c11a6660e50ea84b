// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in the internal/store package. It translates
// database errors into the store package's sentinel errors so callers
// never depend on driver-specific error types.
package postgres
