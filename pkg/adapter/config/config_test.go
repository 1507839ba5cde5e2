// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/momeni/dealer-web/pkg/adapter/config"
	"github.com/momeni/dealer-web/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYaml = `database:
  host: 127.0.0.1
  name: dealerweb
  pass-dir: %q
site:
  id: mtautos
  name: MT Autos
  domain: mtautos.sk
  base-url: https://www.mtautos.sk/
  storage-base-url: https://storage.mtautos.sk
mail:
  sender: web@mtautos.sk
  to: info@mtautos.sk
usecases:
  vehicles:
    homepage-limit: 6
versions:
  config: %s
  database: %s
`

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	passDir := t.TempDir()
	path := writeConfig(t, fmt.Sprintf(sampleYaml, passDir, "1.0.0", "1.0.0"))
	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", c.Database.Host)
	assert.Equal(t, 5432, c.Database.Port, "default port")
	assert.Equal(t, "scram-sha-256", c.Database.AuthMethod, "default")
	assert.NotNil(t, c.Database.Hasher())
	assert.Equal(t, "dealerweb1", c.Database.SchemaName())

	require.NotNil(t, c.Gin.Logger)
	assert.True(t, *c.Gin.Logger, "logger enabled by default")
	require.NotNil(t, c.Gin.Recovery)
	assert.True(t, *c.Gin.Recovery, "recovery enabled by default")
	assert.NotNil(t, c.Gin.NewEngine())

	assert.Equal(t, "mtautos", c.Site.ID)
	assert.Equal(
		t, "https://www.mtautos.sk", c.Site.BaseURL, "trailing slash",
	)
	ir := c.Site.ImageResolver()
	assert.Equal(t, "https://storage.mtautos.sk", ir.Base)

	assert.Equal(t, "https://api.smtp2go.com", c.Mail.APIURL, "default")
	assert.Equal(t, "web@mtautos.sk", c.Mail.Sender)

	require.NotNil(t, c.Usecases.Vehicles.HomepageLimit)
	assert.Equal(t, 6, *c.Usecases.Vehicles.HomepageLimit)
	assert.Len(t, c.Usecases.VehiclesOptions(), 1)
}

func TestLoadVersionMismatch(t *testing.T) {
	passDir := t.TempDir()
	for _, tc := range []struct {
		name, cfgVer, dbVer string
	}{
		{"config-major", "2.0.0", "1.0.0"},
		{"config-minor-ahead", "1.9.0", "1.0.0"},
		{"database-major", "1.0.0", "3.0.0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(
				t, fmt.Sprintf(sampleYaml, passDir, tc.cfgVer, tc.dbVer),
			)
			_, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingMandatorySettings(t *testing.T) {
	path := writeConfig(t, `versions:
  config: 1.0.0
  database: 1.0.0
`)
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestRenewPasswords(t *testing.T) {
	passDir := t.TempDir()
	path := writeConfig(t, fmt.Sprintf(sampleYaml, passDir, "1.0.0", "1.0.0"))
	c, err := config.Load(path)
	require.NoError(t, err)

	var gotRoles []repo.Role
	var gotPasswords []string
	err = c.Database.RenewPasswords(
		context.Background(),
		func(
			_ context.Context, roles []repo.Role, passwords []string,
		) error {
			gotRoles = roles
			gotPasswords = passwords
			return nil
		},
		repo.AdminRole, repo.NormalRole,
	)
	require.NoError(t, err)
	require.Equal(t, []repo.Role{repo.AdminRole, repo.NormalRole}, gotRoles)
	require.Len(t, gotPasswords, 2)
	assert.NotEmpty(t, gotPasswords[0])
	assert.NotEqual(t, gotPasswords[0], gotPasswords[1])

	for i, role := range gotRoles {
		data, err := os.ReadFile(
			filepath.Join(passDir, string(role)+".pgpass"),
		)
		require.NoError(t, err)
		assert.Contains(t, string(data), gotPasswords[i])
		assert.Contains(t, string(data), "127.0.0.1:5432:dealerweb:")
	}
}
