package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPurchaseNotFound is returned when a lookup, update or delete targets
	// a purchase that does not exist.
	ErrPurchaseNotFound = errors.New("purchase was not found")

	// ErrTransactionIdentifierExists is returned when a newly created purchase
	// collides with an existing transaction identifier.
	ErrTransactionIdentifierExists = errors.New("transaction identifier already exists")

	// ErrDatabaseUnavailable marks failures the error classifier considers
	// transient: lost connections, serialization failures, deadlocks.
	ErrDatabaseUnavailable = errors.New("database is temporarily unavailable")

	// ErrLocalSessionNotFound is returned by the client session store when no
	// session has been saved.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
