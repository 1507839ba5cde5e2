// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package initdbuc contains the database initialization use case.
// It may be used to initialize a database with development or
// production suitable data as asked by the InitDev and InitProd
// methods.
package initdbuc

import (
	"context"
	"fmt"

	"github.com/momeni/dealer-web/pkg/core/repo"
	"github.com/momeni/dealer-web/pkg/core/scram"
)

// Settings abstracts the configuration items which the initialization
// use case needs: connecting with a specific database role, the
// versioned schema name, the scram hasher matching the DBMS password
// encryption, and the coordinated renewal of role passwords in the
// passwords file.
type Settings interface {
	// ConnectionPool connects to the configured database using the
	// `r` role credentials from the passwords file.
	ConnectionPool(ctx context.Context, r repo.Role) (repo.Pool, error)
	// SchemaName returns the versioned schema name, like dealerweb1.
	SchemaName() string
	// Hasher returns the scram hasher matching the DBMS settings.
	Hasher() scram.Hasher
	// RenewPasswords generates new secure passwords for the given
	// roles and invokes the change function, so the passwords may be
	// updated in the database too. After a successful return of the
	// change function, the new passwords overwrite the passwords file,
	// keeping it usable for subsequent ConnectionPool calls.
	RenewPasswords(
		ctx context.Context,
		change func(
			ctx context.Context,
			roles []repo.Role,
			passwords []string,
		) error,
		roles ...repo.Role,
	) error
}

// SchemaInitializer creates the tables of the current schema major
// version within a given transaction and optionally seeds them.
// It is realized by the pkg/adapter/db/postgres/stlmig1.Settler.
type SchemaInitializer interface {
	InitDevSchema(ctx context.Context) error
	InitProdSchema(ctx context.Context) error
}

// UseCase represents the database initialization use case.
type UseCase struct {
	settings   Settings
	schemaRepo repo.Schema
	// initializer wraps a normal-role transaction with the schema
	// initializer of the current schema major version.
	initializer func(tx repo.Tx) SchemaInitializer
}

// New creates an initialization UseCase instance. The `sr` schema
// management repo runs the role and schema DDL statements, while the
// `init` factory binds a transaction to the current schema version
// initializer.
func New(
	ss Settings, sr repo.Schema, init func(repo.Tx) SchemaInitializer,
) *UseCase {
	return &UseCase{
		settings:    ss,
		schemaRepo:  sr,
		initializer: init,
	}
}

// InitProd drops the versioned schema and recreates it empty, ensures
// the normal role exists with renewed credentials and privileges
// (using the admin role in a first transaction), then connects with
// the normal role and creates the current tables without seeding any
// data (in a second transaction).
func (iduc *UseCase) InitProd(ctx context.Context) error {
	return iduc.initDB(
		ctx,
		func(ctx context.Context, si SchemaInitializer) error {
			return si.InitProdSchema(ctx)
		},
	)
}

// InitDev behaves like InitProd, but additionally fills the created
// tables with the development suitable sample data.
func (iduc *UseCase) InitDev(ctx context.Context) error {
	return iduc.initDB(
		ctx,
		func(ctx context.Context, si SchemaInitializer) error {
			return si.InitDevSchema(ctx)
		},
	)
}

func (iduc *UseCase) initDB(
	ctx context.Context,
	dbi func(ctx context.Context, si SchemaInitializer) error,
) error {
	if err := iduc.dropAndCreateAgain(ctx); err != nil {
		return fmt.Errorf("dropping/recreating schema: %w", err)
	}
	p, err := iduc.settings.ConnectionPool(ctx, repo.NormalRole)
	if err != nil {
		return fmt.Errorf("creating DB pool for normal role: %w", err)
	}
	defer p.Close()
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return dbi(ctx, iduc.initializer(tx))
		})
	})
	if err != nil {
		return fmt.Errorf("normal connection: %w", err)
	}
	return nil
}

func (iduc *UseCase) dropAndCreateAgain(ctx context.Context) error {
	p, err := iduc.settings.ConnectionPool(ctx, repo.AdminRole)
	if err != nil {
		return fmt.Errorf("creating DB pool for admin: %w", err)
	}
	defer p.Close()
	schema := iduc.settings.SchemaName()
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := iduc.schemaRepo.Tx(tx)
			if err := q.DropIfExists(ctx, schema); err != nil {
				return fmt.Errorf("dropping schema: %w", err)
			}
			if err := q.CreateSchema(ctx, schema); err != nil {
				return fmt.Errorf("creating schema: %w", err)
			}
			err := q.CreateRoleIfNotExists(ctx, repo.NormalRole)
			if err != nil {
				return fmt.Errorf("creating normal role: %w", err)
			}
			err = q.GrantPrivileges(ctx, schema, repo.NormalRole)
			if err != nil {
				return fmt.Errorf("granting privileges: %w", err)
			}
			hasher := iduc.settings.Hasher()
			return iduc.settings.RenewPasswords(
				ctx,
				func(
					ctx context.Context,
					roles []repo.Role,
					passwords []string,
				) error {
					return q.ChangePasswords(
						ctx, hasher, roles, passwords,
					)
				},
				repo.AdminRole, repo.NormalRole,
			)
		})
	})
	if err != nil {
		return fmt.Errorf("admin connection: %w", err)
	}
	return nil
}
