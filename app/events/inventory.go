// Package events names the inventory events and defines their payloads.
package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/stockroom/app/models"
)

const (
	ProductAdded        = "product.added"
	StockAdded          = "stock.added"
	StockDeducted       = "stock.deducted"
	ProductDiscontinued = "product.discontinued"
	// StockRejected fires for every refused registry operation.
	StockRejected = "stock.rejected"
)

// Operation names used in rejection payloads.
const (
	OpAdd         = "add"
	OpAddStock    = "add_stock"
	OpDeductStock = "deduct_stock"
	OpDiscontinue = "discontinue"
)

// ProductAddedEvent is fired after a product has been registered.
type ProductAddedEvent struct {
	Handle     models.Handle
	ItemNumber models.ItemNumber
	Kind       models.Kind
	Quantity   int
	Price      decimal.Decimal
	Timestamp  time.Time
}

// StockChangedEvent is fired after a successful stock adjustment.
type StockChangedEvent struct {
	Handle     models.Handle
	ItemNumber models.ItemNumber
	OldStock   int
	NewStock   int
	Timestamp  time.Time
}

// Delta is the signed quantity change.
func (e StockChangedEvent) Delta() int { return e.NewStock - e.OldStock }

// ProductDiscontinuedEvent is fired when a product leaves the active state.
type ProductDiscontinuedEvent struct {
	Handle     models.Handle
	ItemNumber models.ItemNumber
	Timestamp  time.Time
}

// StockRejectedEvent is fired when a registry operation is refused.
type StockRejectedEvent struct {
	Operation  string
	ItemNumber models.ItemNumber
	Reason     string
	Timestamp  time.Time
}
