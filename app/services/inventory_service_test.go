package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/app/events"
	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/services"
	"github.com/shashiranjanraj/stockroom/pkg/event"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
	"github.com/shashiranjanraj/stockroom/pkg/testkit"
)

func newInventory(opts ...services.Option) *services.Inventory {
	return services.NewInventory(append([]services.Option{services.WithLogger(logger.Discard())}, opts...)...)
}

func phone(n, qty int, price string) models.SmartPhoneDescriptor {
	return models.SmartPhoneDescriptor{
		Attributes: models.Attributes{
			ItemNumber: models.ItemNumber(n),
			Name:       "Pocket",
			Quantity:   qty,
			Price:      decimal.RequireFromString(price),
		},
		Brand:              "Acme",
		Model:              "X1",
		BatteryCapacityMah: 4000,
	}
}

func TestScenarios(t *testing.T) {
	testkit.RunDir(t, "testdata")
}

func TestAddAndGet(t *testing.T) {
	inv := newInventory()
	h, err := inv.Add(phone(5, 2, "899"))
	require.NoError(t, err)

	v, err := inv.Get(h)
	require.NoError(t, err)
	assert.Equal(t, models.ItemNumber(5), v.ItemNumber())
	assert.Equal(t, h, v.Handle())
	assert.True(t, inv.IsItemNumberUsed(5))
	assert.False(t, inv.IsItemNumberUsed(6))
	assert.Equal(t, 1, inv.Len())
}

func TestDuplicateAddLeavesRegisterUnchanged(t *testing.T) {
	inv := newInventory()
	_, err := inv.Add(phone(5, 2, "899"))
	require.NoError(t, err)

	_, err = inv.Add(phone(5, 9, "1"))
	assert.ErrorIs(t, err, models.ErrDuplicateItemNumber)
	assert.Equal(t, 1, inv.Len())

	v, err := inv.Lookup(5)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Quantity())
}

func TestListIsSortedAndDoesNotReorderStorage(t *testing.T) {
	inv := newInventory()
	for _, n := range []int{9, 2, 7, 5} {
		_, err := inv.Add(phone(n, 1, "1"))
		require.NoError(t, err)
	}

	var got []models.ItemNumber
	for _, v := range inv.List() {
		got = append(got, v.ItemNumber())
	}
	assert.Equal(t, []models.ItemNumber{2, 5, 7, 9}, got)
	assert.Len(t, inv.List(), 4)
}

func TestListReturnsSnapshots(t *testing.T) {
	inv := newInventory()
	h, err := inv.Add(phone(1, 3, "1"))
	require.NoError(t, err)

	before := inv.List()[0]
	require.NoError(t, inv.AddStock(h, 2))
	assert.Equal(t, 3, before.Quantity())
	assert.Equal(t, 5, inv.List()[0].Quantity())

	// a view cannot be used to mutate the registry
	if p, ok := before.(models.Product); ok {
		require.NoError(t, p.AddStock(100))
	}
	v, _ := inv.Get(h)
	assert.Equal(t, 5, v.Quantity())
}

func TestStockOperationsOnUnknownHandle(t *testing.T) {
	inv := newInventory()
	h := models.NewHandle()

	assert.ErrorIs(t, inv.AddStock(h, 1), models.ErrNotFound)
	assert.ErrorIs(t, inv.DeductStock(h, 1), models.ErrNotFound)
	assert.ErrorIs(t, inv.Discontinue(h), models.ErrNotFound)
	_, err := inv.Get(h)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = inv.Lookup(1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCapacity(t *testing.T) {
	inv := newInventory(services.WithCapacity(2))
	assert.Equal(t, 2, inv.Capacity())
	assert.Equal(t, 2, inv.Remaining())

	_, err := inv.Add(phone(1, 1, "1"))
	require.NoError(t, err)
	_, err = inv.Add(phone(2, 1, "1"))
	require.NoError(t, err)
	assert.True(t, inv.Full())
	assert.Equal(t, 0, inv.Remaining())

	_, err = inv.Add(phone(3, 1, "1"))
	assert.ErrorIs(t, err, models.ErrRegistryFull)

	// capacity is checked before uniqueness
	_, err = inv.Add(phone(1, 1, "1"))
	assert.ErrorIs(t, err, models.ErrRegistryFull)
	assert.Equal(t, 2, inv.Len())
}

func TestUnlimitedCapacity(t *testing.T) {
	inv := newInventory(services.WithCapacity(-3))
	assert.Equal(t, 0, inv.Capacity())
	assert.Equal(t, -1, inv.Remaining())
	assert.False(t, inv.Full())
}

func TestAddNilDescriptor(t *testing.T) {
	inv := newInventory()
	_, err := inv.Add(nil)
	assert.ErrorIs(t, err, models.ErrUnknownKind)
	assert.Equal(t, 0, inv.Len())
}

func TestAddTypedNilDescriptor(t *testing.T) {
	inv := newInventory()
	for _, d := range []models.Descriptor{
		(*models.RefrigeratorDescriptor)(nil),
		(*models.TVDescriptor)(nil),
		(*models.WashingMachineDescriptor)(nil),
		(*models.SmartPhoneDescriptor)(nil),
	} {
		require.NotPanics(t, func() {
			_, err := inv.Add(d)
			assert.ErrorIs(t, err, models.ErrUnknownKind, "%T", d)
		})
	}
	assert.Equal(t, 0, inv.Len())
}

func TestEventsCarryChanges(t *testing.T) {
	d := event.New()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	inv := newInventory(services.WithDispatcher(d), services.WithClock(func() time.Time { return at }))
	assert.Same(t, d, inv.Events())

	var added events.ProductAddedEvent
	var changes []events.StockChangedEvent
	var rejected []events.StockRejectedEvent
	d.Listen(events.ProductAdded, func(p any) { added = p.(events.ProductAddedEvent) })
	d.Listen(events.StockAdded, func(p any) { changes = append(changes, p.(events.StockChangedEvent)) })
	d.Listen(events.StockDeducted, func(p any) { changes = append(changes, p.(events.StockChangedEvent)) })
	d.Listen(events.StockRejected, func(p any) { rejected = append(rejected, p.(events.StockRejectedEvent)) })

	h, err := inv.Add(phone(12, 4, "2.50"))
	require.NoError(t, err)
	assert.Equal(t, h, added.Handle)
	assert.Equal(t, models.KindSmartPhone, added.Kind)
	assert.Equal(t, at, added.Timestamp)

	require.NoError(t, inv.AddStock(h, 3))
	require.NoError(t, inv.DeductStock(h, 5))
	require.Len(t, changes, 2)
	assert.Equal(t, 3, changes[0].Delta())
	assert.Equal(t, -5, changes[1].Delta())
	assert.Equal(t, 2, changes[1].NewStock)

	assert.Error(t, inv.DeductStock(h, 3))
	require.Len(t, rejected, 1)
	assert.Equal(t, events.OpDeductStock, rejected[0].Operation)
	assert.Equal(t, "insufficient_stock", rejected[0].Reason)
	assert.Equal(t, models.ItemNumber(12), rejected[0].ItemNumber)
}

func TestSummary(t *testing.T) {
	inv := newInventory()
	h1, err := inv.Add(phone(1, 10, "999.99"))
	require.NoError(t, err)
	_, err = inv.Add(phone(2, 2, "0.05"))
	require.NoError(t, err)
	require.NoError(t, inv.Discontinue(h1))

	s := inv.Summary()
	assert.Equal(t, 2, s.Products)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, 1, s.Discontinued)
	assert.Equal(t, 12, s.Units)
	assert.Equal(t, "10000.00", s.Value.StringFixed(2))
}

func TestSummaryOfEmptyRegister(t *testing.T) {
	s := newInventory().Summary()
	assert.Zero(t, s.Products)
	assert.True(t, s.Value.IsZero())
}
