// Package db creates the database schema. Both sqlite and postgres variants
// exist because the two engines disagree on autoincrement and timestamp
// defaults; callers pick one via the configured database type.
package db
