// Package journal records composition runs in a SQLite database.
//
// Each run gets one row in runs, keyed by a UUIDv7 so ids sort by start time,
// and one row per requested module in module_attempts. The schema is managed
// by embedded golang-migrate migrations applied on Open.
//
// The journal is optional: compose writes to it only when given a path.
package journal
