package services

import (
	"database/sql"
)

// runInTx runs fn inside one database transaction. Rollback is guaranteed on
// any error path; commit happens only on clean return. Failures from the
// storage layer itself come back classified (see classifyStorageError), so no
// partial state is ever visible to a caller that received an error.
func runInTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return classifyStorageError(err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return classifyStorageError(tx.Commit())
}
