package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Attributes is the field bundle every product kind shares.
type Attributes struct {
	ItemNumber ItemNumber
	Name       string
	Quantity   int
	Price      decimal.Decimal
}

// Common returns the shared attributes; promoted into every descriptor.
func (a Attributes) Common() Attributes { return a }

// Descriptor is the input used to register a new product. Kind is the
// discriminator naming the variant to build.
type Descriptor interface {
	Kind() Kind
	Common() Attributes
}

// NewProduct builds the variant named by d under handle h. A nil or
// foreign descriptor yields ErrUnknownKind.
func NewProduct(h Handle, d Descriptor) (Product, error) {
	switch d := d.(type) {
	case RefrigeratorDescriptor:
		return newRefrigerator(h, d), nil
	case *RefrigeratorDescriptor:
		if d != nil {
			return newRefrigerator(h, *d), nil
		}
	case TVDescriptor:
		return newTV(h, d), nil
	case *TVDescriptor:
		if d != nil {
			return newTV(h, *d), nil
		}
	case WashingMachineDescriptor:
		return newWashingMachine(h, d), nil
	case *WashingMachineDescriptor:
		if d != nil {
			return newWashingMachine(h, *d), nil
		}
	case SmartPhoneDescriptor:
		return newSmartPhone(h, d), nil
	case *SmartPhoneDescriptor:
		if d != nil {
			return newSmartPhone(h, *d), nil
		}
	}
	return nil, fmt.Errorf("build %T: %w", d, ErrUnknownKind)
}
