package seeders

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/services"
)

func init() {
	Register("catalogue", SeedCatalogue)
}

// Catalogue is the sample product range, one or two of each kind.
func Catalogue() []models.Descriptor {
	return []models.Descriptor{
		models.RefrigeratorDescriptor{
			Attributes:     attrs(1001, "ColdBox", 10, "999.99"),
			DoorDesign:     "French",
			Color:          "Silver",
			CapacityLitres: 400,
		},
		models.TVDescriptor{
			Attributes:        attrs(2001, "Vision", 6, "2499.00"),
			ScreenType:        "OLED",
			Resolution:        "4K",
			DisplaySizeInches: 55,
		},
		models.WashingMachineDescriptor{
			Attributes:     attrs(3001, "Spin Master", 4, "1599.50"),
			DrumSizeLitres: 9,
			Type:           "Front Load",
			HasDryer:       true,
		},
		models.SmartPhoneDescriptor{
			Attributes:         attrs(4001, "Pocket", 25, "1299.00"),
			Brand:              "Acme",
			Model:              "X1 Pro",
			BatteryCapacityMah: 5000,
		},
		models.SmartPhoneDescriptor{
			Attributes:         attrs(4002, "Pocket Lite", 40, "649.00"),
			Brand:              "Acme",
			Model:              "X1 Lite",
			BatteryCapacityMah: 4000,
		},
	}
}

// SeedCatalogue adds the sample catalogue until the register is full.
// Products whose item number is already taken are skipped.
func SeedCatalogue(inv *services.Inventory) error {
	for _, d := range Catalogue() {
		if inv.Full() {
			return nil
		}
		_, err := inv.Add(d)
		if errors.Is(err, models.ErrDuplicateItemNumber) {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func attrs(n int, name string, qty int, price string) models.Attributes {
	return models.Attributes{
		ItemNumber: models.ItemNumber(n),
		Name:       name,
		Quantity:   qty,
		Price:      decimal.RequireFromString(price),
	}
}
