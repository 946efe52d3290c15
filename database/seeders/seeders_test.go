package seeders_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/app/services"
	"github.com/shashiranjanraj/stockroom/database/seeders"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
)

func newInventory(capacity int) *services.Inventory {
	return services.NewInventory(services.WithLogger(logger.Discard()), services.WithCapacity(capacity))
}

func TestCatalogueIsRegistered(t *testing.T) {
	assert.Contains(t, seeders.Names(), "catalogue")
}

func TestSeedCatalogue(t *testing.T) {
	inv := newInventory(0)
	require.NoError(t, seeders.SeedCatalogue(inv))
	assert.Equal(t, len(seeders.Catalogue()), inv.Len())

	// seeding twice skips taken item numbers
	require.NoError(t, seeders.SeedCatalogue(inv))
	assert.Equal(t, len(seeders.Catalogue()), inv.Len())

	v, err := inv.Lookup(1001)
	require.NoError(t, err)
	assert.Equal(t, "9999.90", v.InventoryValue().StringFixed(2))
}

func TestSeedCatalogueStopsWhenFull(t *testing.T) {
	inv := newInventory(2)
	require.NoError(t, seeders.SeedCatalogue(inv))
	assert.Equal(t, 2, inv.Len())
}

func TestRunAllStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	seeders.Register("broken", func(*services.Inventory) error { return boom })

	err := seeders.RunAll(newInventory(0), logger.Discard())
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, `seeder "broken"`)
}
