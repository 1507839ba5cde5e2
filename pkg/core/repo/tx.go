// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Tx represents one database transaction. It is unsafe for concurrent
// use; statements run on it one at a time through the Queryer methods
// and observe the ACID properties together. The isolation level
// depends on the DBMS settings; a PostgreSQL server provides
// READ-COMMITTED transactions by default, see
// https://www.postgresql.org/docs/current/transaction-iso.html#XACT-READ-COMMITTED
type Tx interface {
	Queryer

	// IsTx method prevents a non-Tx object (such as a Conn) to
	// mistakenly implement the Tx interface.
	IsTx()
}
