// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemarp

import (
	"context"
	"errors"
	"fmt"

	"github.com/momeni/dealer-web/pkg/adapter/db/postgres"
	"github.com/momeni/dealer-web/pkg/core/repo"
	"github.com/momeni/dealer-web/pkg/core/scram"
)

// Identifiers cannot travel as query parameters, so these functions
// interpolate schema and role names directly. Callers are responsible
// to pass trusted name strings; they are read from the configuration
// file, never from end-users.

// DropIfExists drops the `schema` schema with cascade, if it exists.
// That is, if `schema` does not exist, a nil error will be returned
// without any change, while dependent objects of an existing schema
// will be dropped recursively.
func DropIfExists(
	ctx context.Context, tx *postgres.Tx, schema string,
) error {
	_, err := tx.Exec(ctx, fmt.Sprintf(
		"DROP SCHEMA IF EXISTS %q CASCADE", schema,
	))
	if err != nil {
		return fmt.Errorf("dropping schema %q: %w", schema, err)
	}
	return nil
}

// CreateSchema tries to create the `schema` schema.
// There must be no other schema with the `schema` name, otherwise,
// this operation will fail.
func CreateSchema(
	ctx context.Context, tx *postgres.Tx, schema string,
) error {
	_, err := tx.Exec(ctx, fmt.Sprintf("CREATE SCHEMA %q", schema))
	if err != nil {
		return fmt.Errorf("creating schema %q: %w", schema, err)
	}
	return nil
}

// CreateRoleIfNotExists creates the `role` role if it does not exist
// right now. Although the login option is enabled for the created
// role, no specific password will be set for it; the ChangePasswords
// function may be used for setting a password if desired. Otherwise,
// that user may not login effectively (but using the trust or local
// identity methods).
func CreateRoleIfNotExists(
	ctx context.Context, tx *postgres.Tx, role repo.Role,
) error {
	rows, err := tx.Query(
		ctx, "SELECT 1 FROM pg_roles WHERE rolname = $1", string(role),
	)
	if err != nil {
		return fmt.Errorf("querying pg_roles: %w", err)
	}
	exists := rows.Next()
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("querying pg_roles: %w", err)
	}
	if exists {
		return nil
	}
	_, err = tx.Exec(ctx, fmt.Sprintf(
		"CREATE ROLE %q WITH LOGIN", string(role),
	))
	if err != nil {
		return fmt.Errorf("creating role %q: %w", role, err)
	}
	return nil
}

// GrantPrivileges grants ALL privileges on the `schema` schema to the
// `role` role, so it may create or access tables in that schema and
// run relevant queries. It also alters the role, setting its default
// search_path to the `schema` schema alone.
func GrantPrivileges(
	ctx context.Context, tx *postgres.Tx, schema string, role repo.Role,
) error {
	_, err := tx.Exec(ctx, fmt.Sprintf(
		"GRANT ALL ON SCHEMA %q TO %q", schema, string(role),
	))
	if err != nil {
		return fmt.Errorf("granting on schema %q: %w", schema, err)
	}
	_, err = tx.Exec(ctx, fmt.Sprintf(
		"ALTER ROLE %q SET search_path TO %q", string(role), schema,
	))
	if err != nil {
		return fmt.Errorf("setting search_path of %q: %w", role, err)
	}
	return nil
}

// ChangePasswords updates the passwords of the given roles in the
// current transaction. The roles and passwords slices must have the
// same number of entries, so they can be used in pair.
// The `hasher` will be used for hashing of the `passwords` before
// sending them to the DBMS (so they may not leak in plaintext).
// This SCRAM hasher format must conform with the DBMS expected
// password_encryption setting.
func ChangePasswords(
	ctx context.Context,
	tx *postgres.Tx,
	hasher scram.Hasher,
	roles []repo.Role,
	passwords []string,
) error {
	if len(roles) != len(passwords) {
		return errors.New("roles and passwords must be in pair")
	}
	for i, role := range roles {
		h, err := hasher.Hash(passwords[i], "", 15000)
		if err != nil {
			return fmt.Errorf("hashing password of %q: %w", role, err)
		}
		// the hash consists of ASCII printable letters only
		_, err = tx.Exec(ctx, fmt.Sprintf(
			"ALTER ROLE %q WITH LOGIN PASSWORD '%s'", string(role), h,
		))
		if err != nil {
			return fmt.Errorf("altering role %q: %w", role, err)
		}
	}
	return nil
}
