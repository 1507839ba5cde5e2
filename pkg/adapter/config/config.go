// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the dealerweb to instantiate
// different components, from the adapter or use cases layers, using
// those loaded configuration settings.
// The parsed and validated configurations should be passed to their
// ultimate components as a series of individual params (for the
// mandatory items) and a series of functional options (for the
// optional items), so they may be accumulated and validated in the
// relevant end-component such as a UseCase instance. This design
// decision causes a bit of redundancy in favor of a defensive
// solution.
//
// Secrets never live in the config file itself: the SMTP2GO API key
// and the admin panel token are taken from the process environment
// (optionally populated from a .env file by the main package).
package config

import (
	"fmt"
	"os"

	"github.com/momeni/dealer-web/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// These constants define the major, minor, and patch version of the
// configuration settings which are supported by the Config struct.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the semantic version of Config struct.
var Version = model.SemVer{Major, Minor, Patch}

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is preferred to
// implement Config with primitive fields or other structs which are
// defined locally, not models or structs which are defined in lower
// layers, so the configuration can be versioned and kept intact while
// other layers can change freely.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Site     Site     // public site identity settings
	Mail     Mail     // outbound email relay settings
	Usecases Usecases // configuration settings for supported use cases

	// Vers contains the configuration file and database schema version
	// strings corresponding to this Config instance and its Database
	// target.
	Vers Versions `yaml:"versions"`
}

// Versions carries the version strings of a configuration file, so a
// mismatching file is rejected before any of its settings may be
// misinterpreted silently.
type Versions struct {
	// Config is the configuration file format version.
	Config model.SemVer `yaml:"config"`
	// Database is the database schema version of the Database target.
	Database model.SemVer `yaml:"database"`
}

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// Given path must belong to a configuration file which conforms with
// the latest known configuration settings format.
// The corresponding database schema version must also match with the
// latest known database schema version.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.Vers.Validate(); err != nil {
		return nil, fmt.Errorf("checking versions: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize checks the mandatory settings, fills the
// optional settings with their default values, and derives the
// dependent unexported fields (such as the scram hasher instance).
func (c *Config) ValidateAndNormalize() error {
	if err := c.Database.validateAndNormalize(); err != nil {
		return fmt.Errorf("database settings: %w", err)
	}
	c.Gin.normalize()
	if err := c.Site.validateAndNormalize(); err != nil {
		return fmt.Errorf("site settings: %w", err)
	}
	c.Mail.normalize()
	return nil
}
