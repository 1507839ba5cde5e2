package repo

import (
	"context"

	"github.com/momeni/dealer-web/pkg/core/model"
)

type VehiclesConnQueryer interface {
	VehiclesQueryer
}

type VehiclesTxQueryer interface {
	VehiclesQueryer
}

// VehiclesQueryer supports the vehicle queries of one dealership site.
// All operations are scoped by the site identifier and exclude the
// soft-deleted rows, except FetchByID which serves the admin flow too.
// Listing operations return vehicles ordered newest-first by their
// creation timestamp. A missing row is reported as cerr.NotFound which
// is distinguishable from transport or query errors.
type VehiclesQueryer interface {
	// List returns all non-deleted vehicles of the site, newest first.
	List(ctx context.Context, siteID string) ([]model.Vehicle, error)
	// FetchByID returns the complete attribute set of one vehicle.
	FetchByID(ctx context.Context, siteID, id string) (*model.Vehicle, error)
	// Create persists a new vehicle row and returns it as stored.
	Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)
	// Update overwrites the descriptive attributes of one vehicle.
	Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)
	// SoftDelete marks one vehicle as deleted, hiding it from public
	// listings without removing the row.
	SoftDelete(ctx context.Context, siteID, id string) error
}

type Vehicles interface {
	Conn(Conn) VehiclesConnQueryer
	Tx(Tx) VehiclesTxQueryer
}
