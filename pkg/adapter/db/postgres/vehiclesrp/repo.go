// Package vehiclesrp implements the vehicles repository over the
// cars table, realizing the pkg/core/repo.Vehicles interface. Raw
// image paths are resolved to publicly fetchable URLs at read time
// using the configured image resolver.
package vehiclesrp

import (
	"context"

	"github.com/momeni/dealer-web/pkg/adapter/db/postgres"
	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/momeni/dealer-web/pkg/core/repo"
)

type Repo struct {
	ir model.ImageResolver
}

// New instantiates a vehicles repository. The `ir` resolver maps the
// stored image paths of fetched rows to fetchable URLs.
func New(ir model.ImageResolver) *Repo {
	return &Repo{ir: ir}
}

type connQueryer struct {
	*postgres.Conn
	ir model.ImageResolver
}

func (vehicles *Repo) Conn(c repo.Conn) repo.VehiclesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc, ir: vehicles.ir}
}

func (cq connQueryer) List(ctx context.Context, siteID string) ([]model.Vehicle, error) {
	return List(ctx, cq.Conn, cq.ir, siteID)
}

func (cq connQueryer) FetchByID(ctx context.Context, siteID, id string) (*model.Vehicle, error) {
	return FetchByID(ctx, cq.Conn, cq.ir, siteID, id)
}

func (cq connQueryer) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	return Create(ctx, cq.Conn, cq.ir, v)
}

func (cq connQueryer) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	return Update(ctx, cq.Conn, cq.ir, v)
}

func (cq connQueryer) SoftDelete(ctx context.Context, siteID, id string) error {
	return SoftDelete(ctx, cq.Conn, siteID, id)
}

type txQueryer struct {
	*postgres.Tx
	ir model.ImageResolver
}

func (vehicles *Repo) Tx(tx repo.Tx) repo.VehiclesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt, ir: vehicles.ir}
}

func (tq txQueryer) List(ctx context.Context, siteID string) ([]model.Vehicle, error) {
	return List(ctx, tq.Tx, tq.ir, siteID)
}

func (tq txQueryer) FetchByID(ctx context.Context, siteID, id string) (*model.Vehicle, error) {
	return FetchByID(ctx, tq.Tx, tq.ir, siteID, id)
}

func (tq txQueryer) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	return Create(ctx, tq.Tx, tq.ir, v)
}

func (tq txQueryer) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	return Update(ctx, tq.Tx, tq.ir, v)
}

func (tq txQueryer) SoftDelete(ctx context.Context, siteID, id string) error {
	return SoftDelete(ctx, tq.Tx, siteID, id)
}
