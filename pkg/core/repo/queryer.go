package repo

import "context"

// Queryer runs SQL statements on a connection or transaction.
// Parameters are passed out-of-band, so sql stays free of user
// provided values.
type Queryer interface {
	// Exec runs one statement, returning the affected rows count.
	// Without args, sql may carry multiple semicolon-separated
	// statements too.
	Exec(ctx context.Context, sql string, args ...any) (count int64, err error)
	// Query runs one statement, returning its result set. The rows
	// must be closed before this Queryer may be used again.
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Rows is one query result set, iterated one row at a time.
type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
	Values() ([]any, error)
}
