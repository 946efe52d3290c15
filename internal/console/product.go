package console

import (
	"fmt"

	"github.com/shashiranjanraj/stockroom/app/models"
)

// addProducts runs the add-product form n times, stopping early when the
// register fills up.
func (s *Session) addProducts(n int) error {
	for i := 0; i < n; i++ {
		if err := s.addProduct(); err != nil {
			return err
		}
		if s.inv.Full() {
			break
		}
	}
	return nil
}

func (s *Session) addProduct() error {
	if s.inv.Full() {
		fmt.Fprintln(s.out, s.ctrl.MaxProductsMessage())
		return nil
	}

	fmt.Fprintln(s.out, "\nSelect product to add:")
	for i, k := range models.Kinds() {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, k.Title())
	}
	choice, err := s.askInt("Enter your choice: ", "choice", 1, len(models.Kinds()))
	if err != nil {
		return err
	}

	var d models.Descriptor
	switch models.Kinds()[choice-1] {
	case models.KindRefrigerator:
		d, err = s.refrigeratorForm()
	case models.KindTV:
		d, err = s.tvForm()
	case models.KindWashingMachine:
		d, err = s.washingMachineForm()
	case models.KindSmartPhone:
		d, err = s.smartPhoneForm()
	}
	if err != nil {
		return err
	}

	_, res := s.ctrl.Add(d)
	fmt.Fprintln(s.out, res.Message)
	return nil
}

// common collects quantity, price and item number, asked after the
// variant attributes.
func (s *Session) common(name string) (models.Attributes, error) {
	a := models.Attributes{Name: name}
	var err error
	if a.Quantity, err = s.askNonNegative("Enter quantity: ", "quantity"); err != nil {
		return a, err
	}
	if a.Price, err = s.askPrice(); err != nil {
		return a, err
	}
	a.ItemNumber, err = s.askItemNumber()
	return a, err
}

func (s *Session) refrigeratorForm() (models.Descriptor, error) {
	var d models.RefrigeratorDescriptor
	name, err := s.askText("Enter product name: ", "product name")
	if err != nil {
		return nil, err
	}
	if d.DoorDesign, err = s.askText("Enter door design: ", "door design"); err != nil {
		return nil, err
	}
	if d.Color, err = s.askText("Enter color: ", "color"); err != nil {
		return nil, err
	}
	if d.CapacityLitres, err = s.askPositiveFloat("Enter capacity: ", "capacity"); err != nil {
		return nil, err
	}
	d.Attributes, err = s.common(name)
	return d, err
}

func (s *Session) tvForm() (models.Descriptor, error) {
	var d models.TVDescriptor
	name, err := s.askText("Enter product name: ", "product name")
	if err != nil {
		return nil, err
	}
	if d.ScreenType, err = s.askText("Enter screen type: ", "screen type"); err != nil {
		return nil, err
	}
	if d.Resolution, err = s.askAny("Enter resolution: ", "resolution"); err != nil {
		return nil, err
	}
	if d.DisplaySizeInches, err = s.askPositiveFloat("Enter display size: ", "display size"); err != nil {
		return nil, err
	}
	d.Attributes, err = s.common(name)
	return d, err
}

func (s *Session) washingMachineForm() (models.Descriptor, error) {
	var d models.WashingMachineDescriptor
	name, err := s.askText("Enter product name: ", "product name")
	if err != nil {
		return nil, err
	}
	if d.DrumSizeLitres, err = s.askNonNegative("Enter drum size (liters): ", "drum size"); err != nil {
		return nil, err
	}
	if d.Type, err = s.askText("Enter type: ", "type"); err != nil {
		return nil, err
	}
	if d.HasDryer, err = s.askYesNo("Has dryer? (y/n): ", "has dryer"); err != nil {
		return nil, err
	}
	d.Attributes, err = s.common(name)
	return d, err
}

func (s *Session) smartPhoneForm() (models.Descriptor, error) {
	var d models.SmartPhoneDescriptor
	name, err := s.askText("Enter product name: ", "product name")
	if err != nil {
		return nil, err
	}
	if d.Brand, err = s.askText("Enter brand: ", "brand"); err != nil {
		return nil, err
	}
	if d.Model, err = s.askAny("Enter model: ", "model"); err != nil {
		return nil, err
	}
	if d.BatteryCapacityMah, err = s.askNonNegative("Enter battery capacity (mAh): ", "battery capacity"); err != nil {
		return nil, err
	}
	d.Attributes, err = s.common(name)
	return d, err
}
