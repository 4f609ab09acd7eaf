package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSyncRecordNotFound is returned when no sync record matches the
	// requested uuid or id.
	ErrSyncRecordNotFound = errors.New("sync record was not found")

	// ErrImportRecordNotFound is returned when no import receipt exists for
	// the requested original uuid.
	ErrImportRecordNotFound = errors.New("import record was not found")

	// ErrRemoteServerNotFound is returned when a peer lookup matches nothing.
	ErrRemoteServerNotFound = errors.New("remote server was not found")

	// ErrRemoteServerExists is returned when a peer with the same uuid or
	// child username is already registered.
	ErrRemoteServerExists = errors.New("remote server already exists")

	// ErrParentAlreadyDefined is returned when a second PARENT is saved.
	ErrParentAlreadyDefined = errors.New("a parent server is already defined")

	// ErrPropertyNotFound is returned when a global property is absent.
	ErrPropertyNotFound = errors.New("global property was not found")

	// ErrEntityNotFound is returned when no domain entity matches the
	// requested type and uuid or id.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrEntityExists is returned when an entity uuid is already taken
	// within its type.
	ErrEntityExists = errors.New("entity uuid already exists")

	// ErrNoRowsAffected is returned when an UPDATE or DELETE matched no row.
	ErrNoRowsAffected = errors.New("no rows affected")

	// ErrSessionNotStarted is returned by session methods called outside
	// Begin/Commit.
	ErrSessionNotStarted = errors.New("entity session has no open transaction")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// uniqueViolation reports whether err is a unique constraint failure in
// either dialect.
func uniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation || sqliteConstraint(err)
}
