package vehiclesrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/dealer-web/pkg/adapter/db/postgres"
	"github.com/momeni/dealer-web/pkg/core/cerr"
	"github.com/momeni/dealer-web/pkg/core/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gCar mirrors one row of the cars table. Image columns hold raw
// storage paths; they are resolved to fetchable URLs by the toModel
// method at read time, so the core layer only ever observes URLs.
type gCar struct {
	ID              uuid.UUID `gorm:"primaryKey;type:uuid;column:id;default:gen_random_uuid()"`
	SiteID          string    `gorm:"column:site_id"`
	Brand           string
	Model           string
	Year            int
	Price           int
	Mileage         int
	Fuel            string
	Transmission    string
	Power           string
	Engine          string
	BodyType        string `gorm:"column:body_type"`
	Drivetrain      string
	Color           string
	Doors           int
	VIN             string `gorm:"column:vin"`
	Description     string
	Features        []string `gorm:"serializer:json;type:jsonb"`
	Image           string
	Images          []string `gorm:"serializer:json;type:jsonb"`
	ShowOnHomepage  bool     `gorm:"column:show_on_homepage"`
	Reserved        bool
	ReservedUntil   *time.Time `gorm:"column:reserved_until"`
	VATDeductible   bool       `gorm:"column:vat_deductible"`
	PriceWithoutVAT *int       `gorm:"column:price_without_vat"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

func (gc *gCar) TableName() string {
	return "cars"
}

func (gc *gCar) toModel(ir model.ImageResolver) *model.Vehicle {
	return &model.Vehicle{
		ID:              gc.ID.String(),
		SiteID:          gc.SiteID,
		Brand:           gc.Brand,
		Model:           gc.Model,
		Year:            gc.Year,
		Price:           gc.Price,
		Mileage:         gc.Mileage,
		Fuel:            gc.Fuel,
		Transmission:    gc.Transmission,
		Power:           gc.Power,
		Engine:          gc.Engine,
		BodyType:        gc.BodyType,
		Drivetrain:      gc.Drivetrain,
		Color:           gc.Color,
		Doors:           gc.Doors,
		VIN:             gc.VIN,
		Description:     gc.Description,
		Features:        gc.Features,
		Image:           ir.Resolve(gc.Image),
		Images:          ir.ResolveAll(gc.Images),
		ShowOnHomepage:  gc.ShowOnHomepage,
		Reserved:        gc.Reserved,
		ReservedUntil:   gc.ReservedUntil,
		VATDeductible:   gc.VATDeductible,
		PriceWithoutVAT: gc.PriceWithoutVAT,
		CreatedAt:       gc.CreatedAt,
		UpdatedAt:       gc.UpdatedAt,
	}
}

func row(v *model.Vehicle) (*gCar, error) {
	gc := &gCar{
		SiteID:          v.SiteID,
		Brand:           v.Brand,
		Model:           v.Model,
		Year:            v.Year,
		Price:           v.Price,
		Mileage:         v.Mileage,
		Fuel:            v.Fuel,
		Transmission:    v.Transmission,
		Power:           v.Power,
		Engine:          v.Engine,
		BodyType:        v.BodyType,
		Drivetrain:      v.Drivetrain,
		Color:           v.Color,
		Doors:           v.Doors,
		VIN:             v.VIN,
		Description:     v.Description,
		Features:        v.Features,
		Image:           v.Image,
		Images:          v.Images,
		ShowOnHomepage:  v.ShowOnHomepage,
		Reserved:        v.Reserved,
		ReservedUntil:   v.ReservedUntil,
		VATDeductible:   v.VATDeductible,
		PriceWithoutVAT: v.PriceWithoutVAT,
	}
	if v.ID == "" {
		return gc, nil
	}
	id, err := uuid.Parse(v.ID)
	if err != nil {
		return nil, cerr.NotFound(
			fmt.Errorf("vehicle id %q is not a UUID: %w", v.ID, err),
		)
	}
	gc.ID = id
	return gc, nil
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, cerr.NotFound(
			fmt.Errorf("vehicle id %q is not a UUID: %w", id, err),
		)
	}
	return uid, nil
}

func wrap(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return cerr.Conflict(fmt.Errorf("duplicate vehicle: %w", err))
	}
	return fmt.Errorf("query: %w", err)
}

func List[Q postgres.Queryer](
	ctx context.Context, q Q, ir model.ImageResolver, siteID string,
) ([]model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gcs []gCar
	gdb.Where(
		"site_id = ? AND deleted_at IS NULL", siteID,
	).Order("created_at DESC").Find(&gcs)
	if err := gdb.Error; err != nil {
		return nil, wrap(err)
	}
	vehicles := make([]model.Vehicle, len(gcs))
	for i := range gcs {
		vehicles[i] = *gcs[i].toModel(ir)
	}
	return vehicles, nil
}

func FetchByID[Q postgres.Queryer](
	ctx context.Context, q Q, ir model.ImageResolver, siteID, id string,
) (*model.Vehicle, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	gdb := q.GORM(ctx)
	var gc gCar
	err = gdb.Where(
		"id = ? AND site_id = ? AND deleted_at IS NULL", uid, siteID,
	).First(&gc).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, cerr.NotFound(
			fmt.Errorf("no vehicle with id %q", id),
		)
	case err != nil:
		return nil, wrap(err)
	}
	return gc.toModel(ir), nil
}

func Create[Q postgres.Queryer](
	ctx context.Context, q Q, ir model.ImageResolver, v *model.Vehicle,
) (*model.Vehicle, error) {
	gc, err := row(v)
	if err != nil {
		return nil, err
	}
	if gc.ID == uuid.Nil {
		gc.ID = uuid.New()
	}
	gdb := q.GORM(ctx)
	if err := gdb.Create(gc).Error; err != nil {
		return nil, wrap(err)
	}
	return gc.toModel(ir), nil
}

func Update[Q postgres.Queryer](
	ctx context.Context, q Q, ir model.ImageResolver, v *model.Vehicle,
) (*model.Vehicle, error) {
	gc, err := row(v)
	if err != nil {
		return nil, err
	}
	gdb := q.GORM(ctx)
	var updated []gCar
	gdb.Model(&updated).Clauses(clause.Returning{}).Where(
		"id = ? AND site_id = ? AND deleted_at IS NULL",
		gc.ID, gc.SiteID,
	).Select(
		"brand", "model", "year", "price", "mileage", "fuel",
		"transmission", "power", "engine", "body_type", "drivetrain",
		"color", "doors", "vin", "description", "features", "image",
		"images", "show_on_homepage", "reserved", "reserved_until",
		"vat_deductible", "price_without_vat", "updated_at",
	).Updates(*gc)
	if err := gdb.Error; err != nil {
		return nil, wrap(err)
	}
	if n := len(updated); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return updated[0].toModel(ir), nil
}

func SoftDelete[Q postgres.Queryer](
	ctx context.Context, q Q, siteID, id string,
) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	gdb := q.GORM(ctx)
	tt := gdb.Model(&gCar{}).Where(
		"id = ? AND site_id = ? AND deleted_at IS NULL", uid, siteID,
	).Updates(map[string]any{
		"deleted_at": time.Now(),
		"updated_at": time.Now(),
	})
	if err := tt.Error; err != nil {
		return wrap(err)
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(fmt.Errorf("no vehicle with id %q", id))
	}
	return nil
}
