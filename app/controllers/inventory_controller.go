// Package controllers turns registry results into the messages shown to
// the operator.
package controllers

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/services"
)

// Operator-facing messages.
const (
	MsgStockAdded          = "Stock added successfully."
	MsgStockDeducted       = "Stock deducted successfully."
	MsgAddDiscontinued     = "Cannot add stock. Product is discontinued."
	MsgDeductDiscontinued  = "Cannot deduct stock. Product is discontinued."
	MsgDeductExceeds       = "Deduct quantity should not exceed current stock."
	MsgDiscontinued        = "Product discontinued."
	MsgAlreadyDiscontinued = "Product is already discontinued."
	MsgItemNumberUsed      = "Item number already used. Enter a different one."
	MsgProductAdded        = "Product added successfully!"
	MsgNegativeQuantity    = "Please enter a non-negative quantity."
	MsgNotFound            = "Product not found."
	MsgUnknownKind         = "Unknown product type."
	MsgUnexpected          = "An unexpected error occurred. Please check your input."
)

// InventoryController runs operator commands against an Inventory.
type InventoryController struct {
	inv *services.Inventory
}

func NewInventoryController(inv *services.Inventory) *InventoryController {
	return &InventoryController{inv: inv}
}

// Result is the outcome of one command.
type Result struct {
	Message string
	Err     error
}

// OK reports whether the command succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Add registers d.
func (c *InventoryController) Add(d models.Descriptor) (models.Handle, Result) {
	h, err := c.inv.Add(d)
	if err != nil {
		return h, Result{Message: c.message(err, ""), Err: err}
	}
	return h, Result{Message: MsgProductAdded}
}

// AddStock adds qty units to the product behind h.
func (c *InventoryController) AddStock(h models.Handle, qty int) Result {
	if err := c.inv.AddStock(h, qty); err != nil {
		return Result{Message: c.message(err, MsgAddDiscontinued), Err: err}
	}
	return Result{Message: MsgStockAdded}
}

// DeductStock removes qty units from the product behind h.
func (c *InventoryController) DeductStock(h models.Handle, qty int) Result {
	if err := c.inv.DeductStock(h, qty); err != nil {
		return Result{Message: c.message(err, MsgDeductDiscontinued), Err: err}
	}
	return Result{Message: MsgStockDeducted}
}

// Discontinue retires the product behind h.
func (c *InventoryController) Discontinue(h models.Handle) Result {
	if err := c.inv.Discontinue(h); err != nil {
		return Result{Message: c.message(err, ""), Err: err}
	}
	return Result{Message: MsgDiscontinued}
}

// MaxProductsMessage is shown when the register is full.
func (c *InventoryController) MaxProductsMessage() string {
	return fmt.Sprintf("Maximum number of products reached (%d).", c.inv.Capacity())
}

// message maps err to its operator text. discontinued is the text for
// ErrDiscontinued, which differs per operation.
func (c *InventoryController) message(err error, discontinued string) string {
	switch {
	case errors.Is(err, models.ErrDiscontinued):
		return discontinued
	case errors.Is(err, models.ErrInsufficientStock):
		return MsgDeductExceeds
	case errors.Is(err, models.ErrAlreadyDiscontinued):
		return MsgAlreadyDiscontinued
	case errors.Is(err, models.ErrDuplicateItemNumber):
		return MsgItemNumberUsed
	case errors.Is(err, models.ErrRegistryFull):
		return c.MaxProductsMessage()
	case errors.Is(err, models.ErrNegativeQuantity):
		return MsgNegativeQuantity
	case errors.Is(err, models.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, models.ErrUnknownKind):
		return MsgUnknownKind
	}
	return MsgUnexpected
}
