// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package main runs the dealerweb commands with help of the command
// sub-package. Secrets such as the mail relay API key are taken from
// the process environment; a .env file in the working directory is
// loaded first (if present), so development deployments may keep them
// out of the shell history.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/momeni/dealer-web/cmd/dealerweb/command"
)

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.TimeOnly,
	})))
	command.Execute()
}
