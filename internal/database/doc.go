// Package database provides the SQLite-backed archive of generated exports.
package database
