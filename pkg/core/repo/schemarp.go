// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/dealer-web/pkg/core/scram"
)

// SchemaQueryer manages the database schema lifecycle during the
// initialization use case: dropping and recreating the versioned
// schema, ensuring the normal role exists, granting it privileges,
// and renewing role passwords without sending them in plaintext
// (scram hashes travel in the DDL statements instead).
// All methods expect trusted schema and role name strings; they are
// taken from the configuration, never from end-users.
type SchemaQueryer interface {
	// DropIfExists drops the schema if it exists, with cascade.
	DropIfExists(ctx context.Context, schema string) error
	// CreateSchema creates the schema, failing if it already exists.
	CreateSchema(ctx context.Context, schema string) error
	// CreateRoleIfNotExists ensures a login-enabled role exists.
	// No password is set; see ChangePasswords.
	CreateRoleIfNotExists(ctx context.Context, role Role) error
	// GrantPrivileges grants ALL privileges on the schema to the role
	// and points the role's default search_path at it.
	GrantPrivileges(ctx context.Context, schema string, role Role) error
	// ChangePasswords updates the passwords of the given roles, in
	// pair with the passwords slice, hashing each password with the
	// given scram hasher beforehand.
	ChangePasswords(
		ctx context.Context,
		hasher scram.Hasher,
		roles []Role,
		passwords []string,
	) error
}

type Schema interface {
	Tx(Tx) SchemaQueryer
}
