package listeners_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/app/listeners"
	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/services"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
	"github.com/shashiranjanraj/stockroom/pkg/metrics"
)

func TestRegisterMetricsCountsInventoryActivity(t *testing.T) {
	inv := services.NewInventory(services.WithLogger(logger.Discard()))
	m := metrics.NewInventory(nil)
	listeners.RegisterMetrics(inv.Events(), m)

	h, err := inv.Add(models.TVDescriptor{
		Attributes: models.Attributes{ItemNumber: 7, Name: "Vision", Quantity: 4, Price: decimal.RequireFromString("1500")},
		ScreenType: "OLED", Resolution: "4K", DisplaySizeInches: 55,
	})
	require.NoError(t, err)

	require.NoError(t, inv.AddStock(h, 6))
	require.NoError(t, inv.DeductStock(h, 3))
	require.Error(t, inv.DeductStock(h, 100))
	require.NoError(t, inv.Discontinue(h))
	require.Error(t, inv.AddStock(h, 1))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProductsAdded.WithLabelValues("tv")))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.StockUnits.WithLabelValues("in")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.StockUnits.WithLabelValues("out")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Discontinued))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("deduct_stock", "insufficient_stock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("add_stock", "discontinued")))
}
