package models

import "errors"

// Errors returned by the product contract and the inventory registry.
// Callers match them with errors.Is; the returned errors carry extra context.
var (
	ErrDuplicateItemNumber = errors.New("models: item number already in use")
	ErrDiscontinued        = errors.New("models: product is discontinued")
	ErrInsufficientStock   = errors.New("models: insufficient stock")
	ErrAlreadyDiscontinued = errors.New("models: product is already discontinued")
	ErrNotFound            = errors.New("models: product not found")
	ErrNegativeQuantity    = errors.New("models: quantity must not be negative")
	ErrRegistryFull        = errors.New("models: product limit reached")
	ErrUnknownKind         = errors.New("models: unknown product kind")
)

// Reason returns a stable, machine-friendly code for err, suitable for
// metric labels and scenario files. Unknown errors map to "error" and nil
// maps to "ok".
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrDuplicateItemNumber):
		return "duplicate_item_number"
	case errors.Is(err, ErrDiscontinued):
		return "discontinued"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrAlreadyDiscontinued):
		return "already_discontinued"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrNegativeQuantity):
		return "negative_quantity"
	case errors.Is(err, ErrRegistryFull):
		return "registry_full"
	case errors.Is(err, ErrUnknownKind):
		return "unknown_kind"
	}
	return "error"
}
