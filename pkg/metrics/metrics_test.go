package metrics_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/pkg/metrics"
)

func TestObservers(t *testing.T) {
	m := metrics.NewInventory(prometheus.NewRegistry())

	m.ObserveAdded("tv")
	m.ObserveAdded("tv")
	m.ObserveMovement("in", 5)
	m.ObserveMovement("out", 0)
	m.ObserveDiscontinued()
	m.ObserveRejection("deduct_stock", "insufficient_stock")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProductsAdded.WithLabelValues("tv")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Products))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.StockUnits.WithLabelValues("in")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StockMovements.WithLabelValues("out")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StockUnits.WithLabelValues("out")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Discontinued))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("deduct_stock", "insufficient_stock")))
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NewInventory(nil)
		metrics.NewInventory(nil)
	})
}

func TestDump(t *testing.T) {
	m := metrics.NewInventory(nil)
	m.ObserveAdded("refrigerator")

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))
	assert.Contains(t, buf.String(), `stockroom_inventory_products_added_total{kind="refrigerator"} 1`)
	assert.Contains(t, buf.String(), "# HELP stockroom_inventory_products Number of registered products.")
}
