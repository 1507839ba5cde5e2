// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/momeni/dealer-web/internal/test/dbcontainer"
	"github.com/momeni/dealer-web/pkg/adapter/config"
	"github.com/momeni/dealer-web/pkg/adapter/db/postgres"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/routes"
	"github.com/momeni/dealer-web/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

const adminToken = "integration-test-token"

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
	Gin  *gin.Engine
	Mail *httptest.Server
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	sql, err := os.ReadFile("testdata/schema.sql")
	igts.Require().NoError(err, "failed to read schema.sql file")
	err = igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			_, err := c.Exec(ctx, string(sql))
			return err
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")

	igts.Mail = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(
				[]byte(`{"data":{"succeeded":1,"failed":0}}`),
			)
		},
	))
	os.Setenv("ADMIN_TOKEN", adminToken)

	c := &config.Config{
		Site: config.Site{
			ID:             "test",
			Name:           "Test Autos",
			Domain:         "example.sk",
			BaseURL:        "https://www.example.sk",
			StorageBaseURL: "https://storage.example.sk",
		},
		Mail: config.Mail{
			APIURL: igts.Mail.URL,
			Sender: "web@example.sk",
			To:     "info@example.sk",
		},
	}
	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	err = routes.Register(igts.Ctx, igts.Gin, igts.Pool, c)
	igts.Require().NoError(err, "failed to register Gin routes")
}

func (igts *IntegrationGinTestSuite) TearDownSuite() {
	if igts.Mail != nil {
		igts.Mail.Close()
	}
	os.Unsetenv("ADMIN_TOKEN")
}

func (igts *IntegrationGinTestSuite) serve(
	method, target string, body io.Reader, headers map[string]string,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	igts.Gin.ServeHTTP(w, req)
	return w
}

func (igts *IntegrationGinTestSuite) decode(
	w *httptest.ResponseRecorder, out any,
) {
	igts.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

type listingResp struct {
	Vehicles []map[string]any `json:"vehicles"`
	Domains  struct {
		Brands []string `json:"brands"`
		Price  struct {
			Min int `json:"min"`
			Max int `json:"max"`
		} `json:"price"`
	} `json:"domains"`
	Total int `json:"total"`
}

func (igts *IntegrationGinTestSuite) TestListVehicles() {
	w := igts.serve(
		http.MethodGet, "/api/dealerweb/v1/vehicles", nil, nil,
	)
	igts.Equal(http.StatusOK, w.Code)
	var resp listingResp
	igts.decode(w, &resp)

	igts.Equal(3, resp.Total, "other tenants must stay invisible")
	igts.Require().Len(resp.Vehicles, 3)
	igts.Equal("BMW", resp.Vehicles[0]["brand"], "newest first")
	igts.Equal("Audi", resp.Vehicles[1]["brand"])
	igts.Equal("Škoda", resp.Vehicles[2]["brand"])
	igts.Equal(
		"https://storage.example.sk"+
			"/storage/v1/object/public/site-uploads/cars/bmw.jpg",
		resp.Vehicles[0]["image"],
		"stored image paths must resolve to fetchable URLs",
	)
	igts.Equal([]string{"Audi", "BMW", "Škoda"}, resp.Domains.Brands)
	igts.Equal(9900, resp.Domains.Price.Min)
	igts.Equal(24900, resp.Domains.Price.Max)
	igts.Equal(true, resp.Vehicles[1]["reserved"])
	igts.Equal("Rezervované", resp.Vehicles[1]["reservation_label"])
}

func (igts *IntegrationGinTestSuite) TestListVehiclesFiltered() {
	w := igts.serve(
		http.MethodGet,
		"/api/dealerweb/v1/vehicles?price-min=15000&fuel=Diesel",
		nil, nil,
	)
	igts.Equal(http.StatusOK, w.Code)
	var resp listingResp
	igts.decode(w, &resp)

	igts.Require().Len(resp.Vehicles, 2)
	igts.Equal("BMW", resp.Vehicles[0]["brand"])
	igts.Equal("Audi", resp.Vehicles[1]["brand"])
	igts.Equal(3, resp.Total, "total keeps the unfiltered size")
}

func (igts *IntegrationGinTestSuite) TestGetVehicleBySlug() {
	slug := "bmw-320d-2020-11111111-1111-4111-8111-111111111111"
	w := igts.serve(
		http.MethodGet, "/api/dealerweb/v1/vehicles/"+slug, nil, nil,
	)
	igts.Equal(http.StatusOK, w.Code)
	var v map[string]any
	igts.decode(w, &v)
	igts.Equal("BMW", v["brand"])
	igts.Equal(slug, v["slug"])

	// the prefix is ignored; only the trailing id decides
	w = igts.serve(
		http.MethodGet,
		"/api/dealerweb/v1/vehicles/"+
			"renamed-2000-11111111-1111-4111-8111-111111111111",
		nil, nil,
	)
	igts.Equal(http.StatusOK, w.Code)
}

func (igts *IntegrationGinTestSuite) TestGetVehicleNotFound() {
	for _, slug := range []string{
		"bmw-320d",
		"bmw-320d-2020-99999999-9999-4999-8999-999999999999",
		"vw-golf-2019-44444444-4444-4444-8444-444444444444",
	} {
		w := igts.serve(
			http.MethodGet, "/api/dealerweb/v1/vehicles/"+slug,
			nil, nil,
		)
		igts.Equal(http.StatusNotFound, w.Code, slug)
	}
}

func (igts *IntegrationGinTestSuite) TestHomepageVehicles() {
	w := igts.serve(
		http.MethodGet, "/api/dealerweb/v1/homepage-vehicles", nil, nil,
	)
	igts.Equal(http.StatusOK, w.Code)
	var vehicles []map[string]any
	igts.decode(w, &vehicles)
	igts.Require().Len(vehicles, 1, "only the flagged vehicle")
	igts.Equal("BMW", vehicles[0]["brand"])
}

func (igts *IntegrationGinTestSuite) TestContact() {
	body := strings.NewReader(`{
		"name": "Ján Novák",
		"email": "jan@example.sk",
		"message": "Mám záujem o BMW."
	}`)
	w := igts.serve(
		http.MethodPost, "/api/dealerweb/v1/contact", body,
		map[string]string{"Content-Type": "application/json"},
	)
	igts.Equal(http.StatusOK, w.Code, w.Body.String())
	igts.Equal(
		"*", w.Header().Get("Access-Control-Allow-Origin"),
	)

	w = igts.serve(
		http.MethodPost, "/api/dealerweb/v1/contact",
		strings.NewReader(`{"name": "", "email": "", "message": ""}`),
		map[string]string{"Content-Type": "application/json"},
	)
	igts.Equal(http.StatusBadRequest, w.Code)

	w = igts.serve(
		http.MethodOptions, "/api/dealerweb/v1/contact", nil, nil,
	)
	igts.Equal(http.StatusNoContent, w.Code)
}

func (igts *IntegrationGinTestSuite) TestSitemap() {
	w := igts.serve(http.MethodGet, "/sitemap.xml", nil, nil)
	igts.Equal(http.StatusOK, w.Code)
	igts.Contains(w.Header().Get("Content-Type"), "application/xml")
	doc := w.Body.String()
	igts.Contains(doc, "https://www.example.sk/ponuka")
	igts.Contains(
		doc,
		"https://www.example.sk/vozidlo/"+
			"bmw-320d-2020-11111111-1111-4111-8111-111111111111",
	)
}

func (igts *IntegrationGinTestSuite) TestAdminAuthorization() {
	w := igts.serve(
		http.MethodDelete,
		"/api/dealerweb/v1/admin/vehicles/"+
			"33333333-3333-4333-8333-333333333333",
		nil, nil,
	)
	igts.Equal(http.StatusUnauthorized, w.Code)

	w = igts.serve(
		http.MethodDelete,
		"/api/dealerweb/v1/admin/vehicles/"+
			"33333333-3333-4333-8333-333333333333",
		nil, map[string]string{"Authorization": "Bearer wrong"},
	)
	igts.Equal(http.StatusUnauthorized, w.Code)
}

func (igts *IntegrationGinTestSuite) TestAdminLifecycle() {
	auth := map[string]string{
		"Authorization": "Bearer " + adminToken,
		"Content-Type":  "application/json",
	}
	w := igts.serve(
		http.MethodPost, "/api/dealerweb/v1/admin/vehicles",
		strings.NewReader(`{
			"brand": "Volvo", "model": "XC60", "year": 2021,
			"price": 34900, "mileage": 56000,
			"fuel": "Diesel", "transmission": "Automat",
			"features": ["Ťažné zariadenie"],
			"images": ["cars/volvo-1.jpg"]
		}`),
		auth,
	)
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created map[string]any
	igts.decode(w, &created)
	id, _ := created["id"].(string)
	igts.Require().NotEmpty(id)

	w = igts.serve(
		http.MethodPut, "/api/dealerweb/v1/admin/vehicles/"+id,
		strings.NewReader(`{
			"brand": "Volvo", "model": "XC60", "year": 2021,
			"price": 32900, "mileage": 56000,
			"fuel": "Diesel", "transmission": "Automat",
			"reserved": true
		}`),
		auth,
	)
	igts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated map[string]any
	igts.decode(w, &updated)
	igts.Equal(float64(32900), updated["price"])
	igts.Equal(true, updated["reserved"])

	w = igts.serve(
		http.MethodDelete, "/api/dealerweb/v1/admin/vehicles/"+id,
		nil, auth,
	)
	igts.Require().Equal(http.StatusNoContent, w.Code)

	// a soft-deleted vehicle drops out of the public catalog
	w = igts.serve(
		http.MethodGet,
		"/api/dealerweb/v1/vehicles/volvo-xc60-2021-"+id,
		nil, nil,
	)
	igts.Equal(http.StatusNotFound, w.Code)
}
