package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Report labels shared by every product kind.
const (
	LabelItemNumber     = "Item number"
	LabelProductName    = "Product name"
	LabelQuantity       = "Quantity available"
	LabelPrice          = "Price (RM)"
	LabelInventoryValue = "Inventory value"
	LabelStatus         = "Status"
)

// Handle is the stable reference the registry hands out for a stored product.
type Handle uuid.UUID

// NewHandle returns a fresh random handle.
func NewHandle() Handle { return Handle(uuid.New()) }

func (h Handle) String() string { return uuid.UUID(h).String() }

// ItemNumber is the user-facing product identity, unique across the registry.
type ItemNumber int

// String renders the item number zero-padded to four digits.
func (n ItemNumber) String() string { return fmt.Sprintf("%04d", int(n)) }

// Status is the lifecycle state of a product. The zero value is StatusActive.
type Status uint8

const (
	StatusActive Status = iota
	StatusDiscontinued
)

func (s Status) String() string {
	if s == StatusDiscontinued {
		return "Discontinued"
	}
	return "Active"
}

// Kind discriminates the four product variants.
type Kind string

const (
	KindRefrigerator   Kind = "refrigerator"
	KindTV             Kind = "tv"
	KindWashingMachine Kind = "washing_machine"
	KindSmartPhone     Kind = "smartphone"
)

// Kinds lists every product kind in menu order.
func Kinds() []Kind {
	return []Kind{KindRefrigerator, KindTV, KindWashingMachine, KindSmartPhone}
}

// Title is the display name of the kind.
func (k Kind) Title() string {
	switch k {
	case KindRefrigerator:
		return "Refrigerator"
	case KindTV:
		return "TV"
	case KindWashingMachine:
		return "Washing Machine"
	case KindSmartPhone:
		return "SmartPhone"
	}
	return string(k)
}

// Field is one labelled value of a product report. Value keeps its Go type
// (ItemNumber, string, int, float64, bool, decimal.Decimal, Status) so the
// presentation layer decides how to format it.
type Field struct {
	Label string
	Value any
}

// View is the read-only side of a product.
type View interface {
	Handle() Handle
	Kind() Kind
	ItemNumber() ItemNumber
	Name() string
	Quantity() int
	Price() decimal.Decimal
	Status() Status
	Active() bool
	InventoryValue() decimal.Decimal
	Describe() []Field
}

// Product is the full contract of a stored product. The set of
// implementations is closed: only the variants in this package satisfy it.
type Product interface {
	View

	AddStock(qty int) error
	DeductStock(qty int) error
	Discontinue() error

	// Snapshot returns a detached copy that shares no state with the product.
	Snapshot() View

	details() []Field
}

// base holds the attributes and stock behaviour common to every variant.
type base struct {
	handle     Handle
	itemNumber ItemNumber
	name       string
	quantity   int
	price      decimal.Decimal
	status     Status
}

func newBase(h Handle, a Attributes) base {
	return base{
		handle:     h,
		itemNumber: a.ItemNumber,
		name:       a.Name,
		quantity:   a.Quantity,
		price:      a.Price,
	}
}

func (b *base) Handle() Handle { return b.handle }
func (b *base) ItemNumber() ItemNumber { return b.itemNumber }
func (b *base) Name() string { return b.name }
func (b *base) Quantity() int { return b.quantity }
func (b *base) Price() decimal.Decimal { return b.price }
func (b *base) Status() Status { return b.status }
func (b *base) Active() bool { return b.status == StatusActive }

// InventoryValue is price × quantity, recomputed on every call.
func (b *base) InventoryValue() decimal.Decimal {
	return b.price.Mul(decimal.NewFromInt(int64(b.quantity)))
}

// AddStock increases the available quantity. There is no upper bound.
func (b *base) AddStock(qty int) error {
	if qty < 0 {
		return fmt.Errorf("add %d to item %s: %w", qty, b.itemNumber, ErrNegativeQuantity)
	}
	if !b.Active() {
		return fmt.Errorf("add stock to item %s: %w", b.itemNumber, ErrDiscontinued)
	}
	b.quantity += qty
	return nil
}

// DeductStock decreases the available quantity. Deducting exactly the
// available quantity is allowed and drains the product to zero.
func (b *base) DeductStock(qty int) error {
	if qty < 0 {
		return fmt.Errorf("deduct %d from item %s: %w", qty, b.itemNumber, ErrNegativeQuantity)
	}
	if !b.Active() {
		return fmt.Errorf("deduct stock from item %s: %w", b.itemNumber, ErrDiscontinued)
	}
	if qty > b.quantity {
		return fmt.Errorf("deduct %d from item %s holding %d: %w", qty, b.itemNumber, b.quantity, ErrInsufficientStock)
	}
	b.quantity -= qty
	return nil
}

// Discontinue moves the product to its terminal state.
func (b *base) Discontinue() error {
	if !b.Active() {
		return fmt.Errorf("discontinue item %s: %w", b.itemNumber, ErrAlreadyDiscontinued)
	}
	b.status = StatusDiscontinued
	return nil
}

// describe brackets the variant fields with the common ones.
func (b *base) describe(details []Field) []Field {
	out := make([]Field, 0, len(details)+6)
	out = append(out,
		Field{Label: LabelItemNumber, Value: b.itemNumber},
		Field{Label: LabelProductName, Value: b.name},
	)
	out = append(out, details...)
	return append(out,
		Field{Label: LabelQuantity, Value: b.quantity},
		Field{Label: LabelPrice, Value: b.price},
		Field{Label: LabelInventoryValue, Value: b.InventoryValue()},
		Field{Label: LabelStatus, Value: b.status},
	)
}
