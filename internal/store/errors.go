package store

import "errors"

// Sentinel errors returned by backends. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrUnknownStorageMode is returned by [NewBackend] for a mode it does
	// not recognise.
	ErrUnknownStorageMode = errors.New("unknown storage mode")

	// ErrBackendClosed is returned by operations on a closed backend.
	ErrBackendClosed = errors.New("storage backend closed")
)

// Low-level database operation errors, wrapped by the SQLite backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan key cache row")
)
