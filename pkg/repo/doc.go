// Package repo defines the persistence contract consumed by the CRUD
// resource controller and provides a GORM-backed implementation.
//
// The controller never owns record storage: it fetches, lists, saves and
// deletes through the Repository interface and treats everything behind it
// as opaque. The GORM implementation covers PostgreSQL and SQLite;
// concurrency control (transactions, locking) is the database's concern
// and is not re-implemented here, so concurrent writes to one record
// resolve with the store's last-write-wins semantics.
package repo
