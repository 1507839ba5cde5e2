// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"fmt"

	"github.com/momeni/dealer-web/pkg/adapter/db/postgres/stlmig1"
	"github.com/momeni/dealer-web/pkg/core/model"
)

// These constants represent the major, minor, and patch components of
// the current database schema semantic version. The schema major
// version is backed by the stlmig1 package for its initialization
// operations, so the latest version is taken from that package.
const (
	Major = stlmig1.Major // latest supported schema major version
	Minor = stlmig1.Minor // latest schema minor version in Major series
	Patch = stlmig1.Patch // latest schema patch version in Minor series
)

// Version is the latest supported database schema semantic version.
var Version = model.SemVer{Major, Minor, Patch}

// SchemaName is the name of the schema holding all tables of the
// current schema major version.
var SchemaName = fmt.Sprintf("dealerweb%d", Major)
