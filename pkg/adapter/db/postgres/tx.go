// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"

	"github.com/momeni/dealer-web/pkg/core/repo"
	"gorm.io/gorm"
)

// Tx is one ongoing database transaction, realizing the repo.Tx
// interface. It embeds the transactional *gorm.DB, hence, repository
// packages (which may depend on frameworks) can use the GORM APIs on
// it directly. It is unsafe for concurrent use.
type Tx struct {
	*gorm.DB
}

// Exec runs the sql statement with the given args in this
// transaction, returning the affected rows count. With args present,
// sql is prepared and the args travel separately, preventing SQL
// injection; sql must then contain exactly one statement. Without
// args, multiple semicolon-separated statements are accepted too.
//
// Parameters in sql may be numbered like $1, $2, etc. as supported
// by the PostgreSQL wire protocol natively, while the ? and @name
// placeholders are supported through the GORM framework.
func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tt := tx.DB.WithContext(ctx).Exec(sql, args...)
	if err := tt.Error; err != nil {
		return 0, err
	}
	return tt.RowsAffected, nil
}

// Query runs the sql statement with the given args in this
// transaction, returning its result set as the repo.Rows interface.
// The same preparation, injection-prevention, and placeholder rules
// as Exec apply, and sql must contain exactly one statement.
//
// Exec or Query may not be called again before the returned Rows is
// closed, since only one ongoing statement may be used on each
// connection. Concurrent queries need either multiple connections or
// a rewrite using the CURSOR concept:
// https://www.postgresql.org/docs/current/plpgsql-cursors.html
func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	rows, err := tx.DB.WithContext(ctx).Raw(sql, args...).Rows()
	return rowsAdapter{rows}, err
}

// IsTx method prevents a non-Tx object (such as a Conn) to
// mistakenly implement the Tx interface.
func (tx *Tx) IsTx() {
}

// GORM returns the embedded *gorm.DB instance, configured to operate
// on the given ctx context.
func (tx *Tx) GORM(ctx context.Context) *gorm.DB {
	return tx.DB.WithContext(ctx)
}
