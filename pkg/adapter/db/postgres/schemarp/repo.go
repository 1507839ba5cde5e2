// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemarp implements the schema management repository which
// is used by the database initialization use case, realizing the
// pkg/core/repo.Schema interface. Its operations run DDL statements,
// hence, they are only exposed over a transaction.
package schemarp

import (
	"context"

	"github.com/momeni/dealer-web/pkg/adapter/db/postgres"
	"github.com/momeni/dealer-web/pkg/core/repo"
	"github.com/momeni/dealer-web/pkg/core/scram"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type txQueryer struct {
	*postgres.Tx
}

func (schema *Repo) Tx(tx repo.Tx) repo.SchemaQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) DropIfExists(ctx context.Context, schema string) error {
	return DropIfExists(ctx, tq.Tx, schema)
}

func (tq txQueryer) CreateSchema(ctx context.Context, schema string) error {
	return CreateSchema(ctx, tq.Tx, schema)
}

func (tq txQueryer) CreateRoleIfNotExists(ctx context.Context, role repo.Role) error {
	return CreateRoleIfNotExists(ctx, tq.Tx, role)
}

func (tq txQueryer) GrantPrivileges(ctx context.Context, schema string, role repo.Role) error {
	return GrantPrivileges(ctx, tq.Tx, schema, role)
}

func (tq txQueryer) ChangePasswords(
	ctx context.Context,
	hasher scram.Hasher,
	roles []repo.Role,
	passwords []string,
) error {
	return ChangePasswords(ctx, tq.Tx, hasher, roles, passwords)
}
