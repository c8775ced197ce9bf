// Package queries contains the read-side use cases. Handlers read straight
// from PostgreSQL with raw SQL and return flat views; they never load
// aggregates or open a unit of work.
package queries
