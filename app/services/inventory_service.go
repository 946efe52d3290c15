package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/stockroom/app/events"
	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/repositories"
	"github.com/shashiranjanraj/stockroom/pkg/collection"
	"github.com/shashiranjanraj/stockroom/pkg/event"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
)

// Inventory is the product register. It owns every product it stores and
// hands out read-only snapshots only, so all mutation goes through it.
//
// Inventory is not safe for concurrent use.
type Inventory struct {
	repo     *repositories.ProductRepository
	events   *event.Dispatcher
	log      *slog.Logger
	capacity int
	now      func() time.Time
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithCapacity limits the number of products; n <= 0 means unlimited.
func WithCapacity(n int) Option {
	return func(s *Inventory) {
		if n < 0 {
			n = 0
		}
		s.capacity = n
	}
}

// WithDispatcher publishes inventory events on d instead of a private dispatcher.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(s *Inventory) { s.events = d }
}

// WithLogger replaces the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Inventory) { s.log = l }
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Inventory) { s.now = now }
}

func NewInventory(opts ...Option) *Inventory {
	s := &Inventory{
		repo:   repositories.NewProductRepository(),
		events: event.New(),
		log:    logger.L,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Events returns the dispatcher inventory events are fired on.
func (s *Inventory) Events() *event.Dispatcher { return s.events }

// Add registers the product described by d and returns its handle.
// A failed Add never changes the register.
func (s *Inventory) Add(d models.Descriptor) (models.Handle, error) {
	if d == nil {
		return models.Handle{}, s.reject(events.OpAdd, 0, fmt.Errorf("add: %w", models.ErrUnknownKind))
	}
	p, err := models.NewProduct(models.NewHandle(), d)
	if err != nil {
		return models.Handle{}, s.reject(events.OpAdd, 0, fmt.Errorf("add: %w", err))
	}
	n := p.ItemNumber()

	if s.Full() {
		return models.Handle{}, s.reject(events.OpAdd, n, fmt.Errorf("add item %s: %d of %d slots used: %w", n, s.repo.Count(), s.capacity, models.ErrRegistryFull))
	}
	if s.IsItemNumberUsed(n) {
		return models.Handle{}, s.reject(events.OpAdd, n, fmt.Errorf("add item %s: %w", n, models.ErrDuplicateItemNumber))
	}

	s.repo.Create(p)

	s.log.Info("product added",
		"item_number", n.String(),
		"kind", string(p.Kind()),
		"quantity", p.Quantity(),
		"price", p.Price().StringFixed(2),
	)
	s.events.Fire(events.ProductAdded, events.ProductAddedEvent{
		Handle:     p.Handle(),
		ItemNumber: n,
		Kind:       p.Kind(),
		Quantity:   p.Quantity(),
		Price:      p.Price(),
		Timestamp:  s.now(),
	})
	return p.Handle(), nil
}

// IsItemNumberUsed reports whether any stored product carries n.
func (s *Inventory) IsItemNumberUsed(n models.ItemNumber) bool {
	return s.repo.ExistsItemNumber(n)
}

// List returns snapshots of every product sorted by item number. Storage
// order is not affected.
func (s *Inventory) List() []models.View {
	views := collection.Map(s.repo.All(), func(p models.Product) models.View { return p.Snapshot() })
	return collection.SortBy(views, func(a, b models.View) bool { return a.ItemNumber() < b.ItemNumber() })
}

// Get returns a snapshot of the product behind h.
func (s *Inventory) Get(h models.Handle) (models.View, error) {
	p, err := s.repo.FindByHandle(h)
	if err != nil {
		return nil, err
	}
	return p.Snapshot(), nil
}

// Lookup returns a snapshot of the product carrying item number n.
func (s *Inventory) Lookup(n models.ItemNumber) (models.View, error) {
	p, ok := s.repo.FindByItemNumber(n)
	if !ok {
		return nil, fmt.Errorf("item %s: %w", n, models.ErrNotFound)
	}
	return p.Snapshot(), nil
}

// AddStock adds qty units to the product behind h.
func (s *Inventory) AddStock(h models.Handle, qty int) error {
	return s.adjust(h, events.OpAddStock, events.StockAdded, func(p models.Product) error { return p.AddStock(qty) })
}

// DeductStock removes qty units from the product behind h.
func (s *Inventory) DeductStock(h models.Handle, qty int) error {
	return s.adjust(h, events.OpDeductStock, events.StockDeducted, func(p models.Product) error { return p.DeductStock(qty) })
}

// Discontinue retires the product behind h.
func (s *Inventory) Discontinue(h models.Handle) error {
	p, err := s.repo.FindByHandle(h)
	if err != nil {
		return s.reject(events.OpDiscontinue, 0, err)
	}
	if err := p.Discontinue(); err != nil {
		return s.reject(events.OpDiscontinue, p.ItemNumber(), err)
	}

	s.log.Info("product discontinued", "item_number", p.ItemNumber().String())
	s.events.Fire(events.ProductDiscontinued, events.ProductDiscontinuedEvent{
		Handle:     p.Handle(),
		ItemNumber: p.ItemNumber(),
		Timestamp:  s.now(),
	})
	return nil
}

func (s *Inventory) adjust(h models.Handle, op, name string, apply func(models.Product) error) error {
	p, err := s.repo.FindByHandle(h)
	if err != nil {
		return s.reject(op, 0, err)
	}

	old := p.Quantity()
	if err := apply(p); err != nil {
		return s.reject(op, p.ItemNumber(), err)
	}

	s.log.Info("stock adjusted",
		"item_number", p.ItemNumber().String(),
		"operation", op,
		"old", old,
		"new", p.Quantity(),
	)
	s.events.Fire(name, events.StockChangedEvent{
		Handle:     p.Handle(),
		ItemNumber: p.ItemNumber(),
		OldStock:   old,
		NewStock:   p.Quantity(),
		Timestamp:  s.now(),
	})
	return nil
}

// reject logs and publishes a refused operation, then returns err unchanged.
func (s *Inventory) reject(op string, n models.ItemNumber, err error) error {
	reason := models.Reason(err)
	s.log.Info("operation rejected", "operation", op, "item_number", n.String(), "reason", reason)
	s.events.Fire(events.StockRejected, events.StockRejectedEvent{
		Operation:  op,
		ItemNumber: n,
		Reason:     reason,
		Timestamp:  s.now(),
	})
	return err
}

// Len returns the number of registered products.
func (s *Inventory) Len() int { return s.repo.Count() }

// Capacity returns the product limit, 0 when unlimited.
func (s *Inventory) Capacity() int { return s.capacity }

// Remaining returns how many more products fit, or -1 when unlimited.
func (s *Inventory) Remaining() int {
	if s.capacity == 0 {
		return -1
	}
	return max(s.capacity-s.repo.Count(), 0)
}

// Full reports whether the product limit has been reached.
func (s *Inventory) Full() bool {
	return s.capacity > 0 && s.repo.Count() >= s.capacity
}

// Summary aggregates the register.
type Summary struct {
	Products     int
	Active       int
	Discontinued int
	Units        int
	Value        decimal.Decimal
}

// Summary totals products, units and inventory value.
func (s *Inventory) Summary() Summary {
	all := s.repo.All()
	active := collection.Count(all, func(p models.Product) bool { return p.Active() })
	return Summary{
		Products:     len(all),
		Active:       active,
		Discontinued: len(all) - active,
		Units:        collection.Reduce(all, 0, func(n int, p models.Product) int { return n + p.Quantity() }),
		Value: collection.Reduce(all, decimal.Zero, func(v decimal.Decimal, p models.Product) decimal.Decimal {
			return v.Add(p.InventoryValue())
		}),
	}
}
