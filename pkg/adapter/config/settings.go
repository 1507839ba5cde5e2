// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/momeni/dealer-web/pkg/adapter/db/postgres"
	hashscram "github.com/momeni/dealer-web/pkg/adapter/hash/scram"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin"
	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/momeni/dealer-web/pkg/core/repo"
	"github.com/momeni/dealer-web/pkg/core/scram"
	"github.com/momeni/dealer-web/pkg/core/usecase/vehiclesuc"
)

// Validate checks that the configuration file format version and the
// target database schema version both match the versions which this
// binary supports. Only the major components must match exactly; the
// minor components of the file may not exceed the known minor version.
func (v Versions) Validate() error {
	if v.Config[0] != Major || v.Config[1] > Minor {
		return fmt.Errorf(
			"config version %s is not supported (expected %s)",
			v.Config, Version,
		)
	}
	if v.Database[0] != postgres.Major || v.Database[1] > postgres.Minor {
		return fmt.Errorf(
			"database schema version %s is not supported (expected %s)",
			v.Database, postgres.Version,
		)
	}
	return nil
}

// Database contains the database connection settings. Passwords are
// not kept in the configuration file, but in .pgpass files within the
// PassDir directory, having 0600 permissions and formatted as
// host:port:dbname:role:password lines.
type Database struct {
	Host    string // database server host or unix socket path
	Port    int    // database server port number
	Name    string // database name
	PassDir string `yaml:"pass-dir"` // role password files directory
	// AuthMethod indicates the in-database password encryption scheme.
	// Only scram-sha-256 is supported.
	AuthMethod string `yaml:"auth-method"`

	hasher scram.Hasher
}

func (d *Database) validateAndNormalize() error {
	if d.Host == "" {
		return errors.New("host is required")
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.Name == "" {
		return errors.New("name is required")
	}
	if d.PassDir == "" {
		return errors.New("pass-dir is required")
	}
	switch d.AuthMethod {
	case "":
		d.AuthMethod = "scram-sha-256"
	case "scram-sha-256":
	default:
		return fmt.Errorf("unsupported auth-method: %q", d.AuthMethod)
	}
	d.hasher = hashscram.SHA256()
	return nil
}

// Hasher returns a password hasher matching the configured database
// authentication method, so plain role passwords may be converted to
// their in-database verifier format before transmission.
func (d *Database) Hasher() scram.Hasher {
	return d.hasher
}

// SchemaName returns the database schema name which is used by this
// binary version.
func (d *Database) SchemaName() string {
	return postgres.SchemaName
}

// ConnectionPool establishes a connection pool to the configured
// database, logging in with the given role name. The role password is
// read from the role-specific .pgpass file within the PassDir.
// Caller is responsible to close the returned pool instance.
func (d *Database) ConnectionPool(
	ctx context.Context, role repo.Role,
) (repo.Pool, error) {
	pass, err := d.password(role)
	if err != nil {
		return nil, fmt.Errorf("reading role password: %w", err)
	}
	u := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		role, pass, d.Host, d.Port, d.Name,
	)
	p, err := postgres.NewPool(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	return p, nil
}

func (d *Database) passFile(role repo.Role) string {
	return filepath.Join(d.PassDir, string(role)+".pgpass")
}

func (d *Database) password(role repo.Role) (string, error) {
	data, err := os.ReadFile(d.passFile(role))
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ":", 5)
		if len(parts) != 5 {
			continue
		}
		if match(parts[0], d.Host) &&
			match(parts[1], fmt.Sprintf("%d", d.Port)) &&
			match(parts[2], d.Name) &&
			match(parts[3], string(role)) {
			return parts[4], nil
		}
	}
	return "", fmt.Errorf("no matching line in %s", d.passFile(role))
}

func match(pattern, value string) bool {
	return pattern == "*" || pattern == value
}

// RenewPasswords generates fresh random passwords for the given roles,
// asks the change function to apply them in the database, and then
// persists them in the role-specific .pgpass files. The database is
// updated before the files, so a failed attempt may be retried by
// logging in with the old (still recorded) passwords.
func (d *Database) RenewPasswords(
	ctx context.Context,
	change func(
		ctx context.Context, roles []repo.Role, passwords []string,
	) error,
	roles ...repo.Role,
) error {
	passwords := make([]string, len(roles))
	for i := range roles {
		b := make([]byte, 18)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("generating password: %w", err)
		}
		passwords[i] = base64.RawURLEncoding.EncodeToString(b)
	}
	if err := change(ctx, roles, passwords); err != nil {
		return fmt.Errorf("changing role passwords: %w", err)
	}
	for i, role := range roles {
		line := fmt.Sprintf(
			"%s:%d:%s:%s:%s\n",
			d.Host, d.Port, d.Name, role, passwords[i],
		)
		err := os.WriteFile(d.passFile(role), []byte(line), 0o600)
		if err != nil {
			return fmt.Errorf("writing %s password file: %w", role, err)
		}
	}
	return nil
}

// Gin contains the Gin-Gonic instantiation settings.
type Gin struct {
	// Logger indicates if the gin.Logger() middleware has to be used.
	Logger *bool `yaml:",omitempty"`
	// Recovery indicates if the gin.Recovery() middleware has to be
	// used.
	Recovery *bool `yaml:",omitempty"`
}

func (g *Gin) normalize() {
	t := true
	if g.Logger == nil {
		g.Logger = &t
	}
	if g.Recovery == nil {
		g.Recovery = &t
	}
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Site contains the public identity of the served dealership site.
// A single database may host listings for multiple sites, hence the
// tenant ID which scopes all queries.
type Site struct {
	ID   string // tenant identifier of this site within the database
	Name string // human readable site name, used in emails
	// Domain is the bare domain name of the public site, such as
	// example.sk, used in email footers.
	Domain string
	// BaseURL is the absolute public URL prefix of the site without a
	// trailing slash, such as https://www.example.sk, as used in the
	// generated sitemap entries.
	BaseURL string `yaml:"base-url"`
	// StorageBaseURL is the absolute base URL of the object storage
	// service which keeps the uploaded vehicle images.
	StorageBaseURL string `yaml:"storage-base-url"`
}

func (s *Site) validateAndNormalize() error {
	if s.ID == "" {
		return errors.New("id is required")
	}
	if s.BaseURL == "" {
		return errors.New("base-url is required")
	}
	s.BaseURL = strings.TrimRight(s.BaseURL, "/")
	s.StorageBaseURL = strings.TrimRight(s.StorageBaseURL, "/")
	return nil
}

// ImageResolver returns a resolver converting the stored image paths
// to publicly accessible absolute URLs.
func (s *Site) ImageResolver() model.ImageResolver {
	return model.ImageResolver{Base: s.StorageBaseURL}
}

// Mail contains the outbound email relay settings. The relay API key
// is read from the SMTP2GO_API_KEY environment variable, not from the
// configuration file.
type Mail struct {
	// APIURL is the base URL of the SMTP2GO HTTP API.
	APIURL string `yaml:"api-url"`
	Sender string // sender email address, must be a verified sender
	To     string // recipient email address of contact form messages

	apiKey string
}

func (m *Mail) normalize() {
	if m.APIURL == "" {
		m.APIURL = "https://api.smtp2go.com"
	}
	m.APIURL = strings.TrimRight(m.APIURL, "/")
	m.apiKey = os.Getenv("SMTP2GO_API_KEY")
}

// APIKey returns the SMTP2GO API key from the process environment.
func (m *Mail) APIKey() string {
	return m.apiKey
}

// Usecases contains settings for all supported use cases.
type Usecases struct {
	Vehicles struct {
		// HomepageLimit optionally overrides the number of vehicles
		// which are selected for the homepage highlights section.
		HomepageLimit *int `yaml:"homepage-limit"`
	}
}

// VehiclesOptions returns the configured optional settings of the
// vehicles use case as a list of functional options.
func (u *Usecases) VehiclesOptions() []vehiclesuc.Option {
	var opts []vehiclesuc.Option
	if l := u.Vehicles.HomepageLimit; l != nil {
		opts = append(opts, vehiclesuc.WithHomepageLimit(*l))
	}
	return opts
}

// AdminToken returns the bearer token which protects the admin
// endpoints, as read from the ADMIN_TOKEN environment variable.
// An empty token disables the admin endpoints entirely.
func (u *Usecases) AdminToken() string {
	return os.Getenv("ADMIN_TOKEN")
}
