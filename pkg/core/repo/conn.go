package repo

import "context"

type TxHandler func(context.Context, Tx) error

// Conn is one pinned database connection. Statements which run on it
// directly see auto-commit semantics; the Tx method wraps a handler
// in one transaction instead.
type Conn interface {
	Queryer

	// Tx begins a transaction, runs handler within it, and commits
	// it if handler returns nil (rolling back otherwise).
	Tx(ctx context.Context, handler TxHandler) error

	// IsConn method prevents a non-Conn object to mistakenly
	// implement the Conn interface.
	IsConn()
}
