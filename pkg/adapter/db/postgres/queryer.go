package postgres

import (
	"context"

	"github.com/momeni/dealer-web/pkg/core/repo"
	"gorm.io/gorm"
)

// Queryer constrains the generic repository query functions to a
// connection or transaction, exposing the GORM method which both
// types provide, so queries may be written once with the GORM APIs
// and run in either execution context.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer

	// GORM returns the embedded *gorm.DB instance, configured to
	// operate on the given ctx context.
	GORM(ctx context.Context) *gorm.DB
}
