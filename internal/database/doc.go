// Package database owns the SQLite connection and schema migration.
// Domain-specific data access lives in the subpackages (books, sessions,
// notes, shelves, goals), each exposing a Repository over the shared *gorm.DB.
package database
