package product

import (
	"math"

	"ootd-commerce/internal/pkg/errs"
)

// MaxStock is the largest stock level the inventory column can hold.
const MaxStock = math.MaxInt32

var (
	ErrNegativeStock     = errs.NewKind("stock cannot be negative", errs.ErrBadRequest)
	ErrStockTooLarge     = errs.NewKind("stock exceeds the maximum allowed", errs.ErrBadRequest)
	ErrInvalidQuantity   = errs.NewKind("quantity must be positive", errs.ErrBadRequest)
	ErrInsufficientStock = errs.NewKind("insufficient stock", errs.ErrInsufficientStock)
	ErrNotPurchasable    = errs.NewKind("product is not available for purchase", errs.ErrBadRequest)
	ErrProductNotFound   = errs.NewKind("product not found", errs.ErrNotFound)
	ErrSnapshotNotFound  = errs.NewKind("listing snapshot not found", errs.ErrNotFound)
)

// IsPurchasable is derived at read time; a disabled store hides all of its products.
func IsPurchasable(productEnabled, storeEnabled bool) bool {
	return productEnabled && storeEnabled
}
