package repositories

import (
	"fmt"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/pkg/collection"
)

// ProductRepository keeps products in memory, in insertion order.
// Lookups are linear scans; the register holds a few dozen products at most.
type ProductRepository struct {
	products []models.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Create appends a product.
func (r *ProductRepository) Create(p models.Product) {
	r.products = append(r.products, p)
}

// FindByHandle looks up a product by its registry handle.
func (r *ProductRepository) FindByHandle(h models.Handle) (models.Product, error) {
	p, ok := collection.First(r.products, func(p models.Product) bool { return p.Handle() == h })
	if !ok {
		return nil, fmt.Errorf("handle %s: %w", h, models.ErrNotFound)
	}
	return p, nil
}

// FindByItemNumber looks up a product by item number.
func (r *ProductRepository) FindByItemNumber(n models.ItemNumber) (models.Product, bool) {
	return collection.First(r.products, func(p models.Product) bool { return p.ItemNumber() == n })
}

// ExistsItemNumber reports whether any stored product uses n.
func (r *ProductRepository) ExistsItemNumber(n models.ItemNumber) bool {
	return collection.Contains(r.products, func(p models.Product) bool { return p.ItemNumber() == n })
}

// All returns the stored products in insertion order. The slice is a copy;
// the products are the live instances.
func (r *ProductRepository) All() []models.Product {
	return collection.Clone(r.products)
}

// Count returns the number of stored products.
func (r *ProductRepository) Count() int {
	return len(r.products)
}
