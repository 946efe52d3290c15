// Package metrics provides Prometheus instrumentation for the inventory.
//
// Collectors live on their own registry rather than the global default, so
// every console session (and every test) counts from zero:
//
//	m := metrics.NewInventory(prometheus.NewRegistry())
//	m.ObserveMovement("in", 5)
//
// Dump writes the registry in the Prometheus text format.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

const namespace = "stockroom"

// Inventory groups the counters and gauges describing register activity.
type Inventory struct {
	// ProductsAdded counts registered products by kind.
	ProductsAdded *prometheus.CounterVec

	// StockMovements counts successful stock adjustments by direction ("in" | "out").
	StockMovements *prometheus.CounterVec

	// StockUnits counts units moved by direction.
	StockUnits *prometheus.CounterVec

	// Discontinued counts discontinued products.
	Discontinued prometheus.Counter

	// Rejections counts refused operations by operation and reason.
	Rejections *prometheus.CounterVec

	// Products tracks the number of registered products.
	Products prometheus.Gauge

	registry *prometheus.Registry
}

// NewInventory creates the inventory collectors and registers them on reg.
// A nil reg gets a fresh registry.
func NewInventory(reg *prometheus.Registry) *Inventory {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Inventory{
		ProductsAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "products_added_total",
			Help:      "Total products registered.",
		}, []string{"kind"}),
		StockMovements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "stock_movements_total",
			Help:      "Total successful stock adjustments.",
		}, []string{"direction"}),
		StockUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "stock_units_total",
			Help:      "Total units added to or deducted from stock.",
		}, []string{"direction"}),
		Discontinued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "products_discontinued_total",
			Help:      "Total products discontinued.",
		}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "rejections_total",
			Help:      "Total refused inventory operations.",
		}, []string{"operation", "reason"}),
		Products: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "products",
			Help:      "Number of registered products.",
		}),
		registry: reg,
	}

	reg.MustRegister(
		m.ProductsAdded,
		m.StockMovements,
		m.StockUnits,
		m.Discontinued,
		m.Rejections,
		m.Products,
	)
	return m
}

// WithRuntime adds the Go runtime and process collectors.
func (m *Inventory) WithRuntime() *Inventory {
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Inventory) Registry() *prometheus.Registry { return m.registry }

// ObserveAdded records a newly registered product.
func (m *Inventory) ObserveAdded(kind string) {
	m.ProductsAdded.WithLabelValues(kind).Inc()
	m.Products.Inc()
}

// ObserveMovement records a stock adjustment of units in direction "in" or "out".
func (m *Inventory) ObserveMovement(direction string, units int) {
	m.StockMovements.WithLabelValues(direction).Inc()
	if units > 0 {
		m.StockUnits.WithLabelValues(direction).Add(float64(units))
	}
}

// ObserveDiscontinued records a discontinued product.
func (m *Inventory) ObserveDiscontinued() { m.Discontinued.Inc() }

// ObserveRejection records a refused operation.
func (m *Inventory) ObserveRejection(operation, reason string) {
	m.Rejections.WithLabelValues(operation, reason).Inc()
}

// Dump writes every metric family of the registry to w in text format.
func (m *Inventory) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
