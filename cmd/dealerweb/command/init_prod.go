// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/momeni/dealer-web/pkg/adapter/config"
	"github.com/momeni/dealer-web/pkg/adapter/db/postgres/schemarp"
	"github.com/momeni/dealer-web/pkg/adapter/db/postgres/stlmig1"
	"github.com/momeni/dealer-web/pkg/core/repo"
	"github.com/momeni/dealer-web/pkg/core/usecase/initdbuc"
	"github.com/spf13/cobra"
)

const credsRenewalMessage = `
Nevertheless, the passwords of the admin and normal database roles
will be renewed randomly and their passwords files (in the configured
pass-dir) will be overwritten accordingly.`

var initProdCmd = &cobra.Command{
	Use:   "init-prod",
	Short: "Initialize database contents with production suitable data",
	Long: `Initialize database contents with production suitable data
for the database schema version which is specified in the
configuration file. The database connection information are also read
from the config file. No changes will be made to the config file
itself.` + credsRenewalMessage + `

The versioned schema will be dropped (if it exists) and recreated with
empty tables, so an existing inventory is wiped out by this action.`,
	RunE: initProd,
	Args: cobra.NoArgs,
}

func initProd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	uc, err := newInitDBUseCase()
	if err != nil {
		return err
	}
	if err := uc.InitProd(ctx); err != nil {
		return fmt.Errorf("initializing DB with prod data: %w", err)
	}
	return nil
}

func newInitDBUseCase() (*initdbuc.UseCase, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	return initdbuc.New(
		&c.Database,
		schemarp.New(),
		func(tx repo.Tx) initdbuc.SchemaInitializer {
			return stlmig1.New(tx)
		},
	), nil
}

func init() {
	dbCmd.AddCommand(initProdCmd)
}
