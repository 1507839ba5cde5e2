// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminuc_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/momeni/dealer-web/internal/test/fakerp"
	"github.com/momeni/dealer-web/pkg/core/cerr"
	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/momeni/dealer-web/pkg/core/usecase/adminuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	rp := &fakerp.Vehicles{}
	uc := adminuc.New(&fakerp.Pool{}, rp, "site")
	created, err := uc.Create(context.Background(), &model.Vehicle{
		Brand: "BMW", Model: "320d", Year: 2020, Price: 30000,
		SiteID: "spoofed-site",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	// the configured site always wins over a client-supplied one
	assert.Equal(t, "site", created.SiteID)
	require.Len(t, rp.Rows, 1)
}

func TestCreateVINConflict(t *testing.T) {
	rp := &fakerp.Vehicles{}
	uc := adminuc.New(&fakerp.Pool{}, rp, "site")
	ctx := context.Background()
	_, err := uc.Create(ctx, &model.Vehicle{
		Brand: "BMW", Model: "320d", Year: 2020, VIN: "WBA123",
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &model.Vehicle{
		Brand: "BMW", Model: "330i", Year: 2021, VIN: "WBA123",
	})
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.StatusConflict, ce.HTTPStatusCode)
}

func TestUpdate(t *testing.T) {
	rp := &fakerp.Vehicles{}
	uc := adminuc.New(&fakerp.Pool{}, rp, "site")
	ctx := context.Background()
	created, err := uc.Create(ctx, &model.Vehicle{
		Brand: "BMW", Model: "320d", Year: 2020, Price: 30000,
	})
	require.NoError(t, err)

	created.Price = 28000
	created.Reserved = true
	updated, err := uc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 28000, updated.Price)
	assert.True(t, updated.Reserved)

	missing := *created
	missing.ID = uuid.New().String()
	_, err = uc.Update(ctx, &missing)
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.StatusNotFound, ce.HTTPStatusCode)
}

func TestDelete(t *testing.T) {
	rp := &fakerp.Vehicles{}
	uc := adminuc.New(&fakerp.Pool{}, rp, "site")
	ctx := context.Background()
	created, err := uc.Create(ctx, &model.Vehicle{
		Brand: "BMW", Model: "320d", Year: 2020,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.Empty(t, rp.Rows)

	err = uc.Delete(ctx, created.ID)
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.StatusNotFound, ce.HTTPStatusCode)
}
