package postgres

import (
	"database/sql"
	"fmt"
)

// rowsAdapter exposes *sql.Rows as the repo.Rows interface, adding
// the Values convenience for queries with a dynamic column set.
type rowsAdapter struct {
	*sql.Rows
}

func (ra rowsAdapter) Close() {
	// returned error may be checked by calling the Err() method
	_ = ra.Rows.Close()
}

// Values scans the current row into a freshly allocated []any with
// one element per column of the result set.
func (ra rowsAdapter) Values() ([]any, error) {
	names, err := ra.Columns()
	if err != nil {
		return nil, fmt.Errorf("column-names: %w", err)
	}
	vals := make([]any, len(names))
	valPtrs := make([]any, len(names))
	for i := range vals {
		valPtrs[i] = &vals[i]
	}
	if err := ra.Scan(valPtrs...); err != nil {
		return nil, err
	}
	return vals, nil
}
