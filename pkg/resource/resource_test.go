package resource_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/pkg/resource"
)

func coldBox(t *testing.T) models.Product {
	t.Helper()
	p, err := models.NewProduct(models.NewHandle(), models.RefrigeratorDescriptor{
		Attributes: models.Attributes{
			ItemNumber: 1001,
			Name:       "ColdBox",
			Quantity:   10,
			Price:      decimal.RequireFromString("999.99"),
		},
		DoorDesign:     "French",
		Color:          "Silver",
		CapacityLitres: 400,
	})
	require.NoError(t, err)
	return p
}

func TestReportRefrigerator(t *testing.T) {
	want := strings.Join([]string{
		"Item number         : 1001",
		"Product name        : ColdBox",
		"Door design         : French",
		"Color               : Silver",
		"Capacity (Litres)   : 400.0",
		"Quantity available  : 10",
		"Price (RM)          : 999.99",
		"Inventory value     : 9999.90",
		"Status              : Active",
	}, "\n")
	assert.Equal(t, want, resource.Report(coldBox(t)))
}

func TestReportWashingMachine(t *testing.T) {
	p, err := models.NewProduct(models.NewHandle(), &models.WashingMachineDescriptor{
		Attributes:     models.Attributes{ItemNumber: 7, Name: "Spin", Quantity: 2, Price: decimal.NewFromInt(1200)},
		DrumSizeLitres: 8,
		Type:           "Front Load",
		HasDryer:       true,
	})
	require.NoError(t, err)
	require.NoError(t, p.Discontinue())

	out := resource.Report(p)
	assert.Contains(t, out, "Item number         : 0007")
	assert.Contains(t, out, "Drum size           : 8 L")
	assert.Contains(t, out, "Has Dryer           : Yes")
	assert.Contains(t, out, "Price (RM)          : 1200.00")
	assert.Contains(t, out, "Status              : Discontinued")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "No", resource.Format(false))
	assert.Equal(t, "55.5", resource.Format(55.5))
	assert.Equal(t, "4000", resource.Format(4000))
	assert.Equal(t, "0042", resource.Format(models.ItemNumber(42)))
	assert.Equal(t, "", resource.Format(nil))
}

func TestListNumbersEntries(t *testing.T) {
	out := resource.List([]models.View{coldBox(t), coldBox(t)})
	assert.True(t, strings.HasPrefix(out, "[01]\nItem number"))
	assert.Contains(t, out, "\n\n[02]\n")
}

func TestCSV(t *testing.T) {
	p, err := models.NewProduct(models.NewHandle(), models.SmartPhoneDescriptor{
		Attributes:         models.Attributes{ItemNumber: 5, Name: "Pocket", Quantity: 3, Price: decimal.RequireFromString("2.5")},
		Brand:              "Acme",
		Model:              "X1",
		BatteryCapacityMah: 4000,
	})
	require.NoError(t, err)

	out, err := resource.CSV([]models.View{p, coldBox(t)})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "item_number,kind,product_name,quantity_available,price,inventory_value,status,details", lines[0])
	assert.Equal(t, "0005,SmartPhone,Pocket,3,2.50,7.50,Active,Brand=Acme; Model=X1; Battery(mAh)=4000", lines[1])
	assert.Equal(t, "1001,Refrigerator,ColdBox,10,999.99,9999.90,Active,Door design=French; Color=Silver; Capacity (Litres)=400.0", lines[2])
}
