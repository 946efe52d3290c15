// Package testkit drives inventory tests from JSON scenario files.
//
// Each scenario is a JSON file describing a sequence of registry operations
// and what each one must produce:
//
//	testdata/
//	  cold_box.json
//	  list_order.json
//
// Example _test.go:
//
//	func TestScenarios(t *testing.T) {
//	    testkit.RunDir(t, "testdata")
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/stockroom/app/models"
)

// ─── Schema ───────────────────────────────────────────────────────────────────

// Step operations.
const (
	OpAdd         = "add"
	OpAddStock    = "add_stock"
	OpDeduct      = "deduct"
	OpDiscontinue = "discontinue"
	OpList        = "list"
	OpValue       = "value"
)

// Scenario describes one registry test case loaded from a JSON file.
type Scenario struct {
	// Meta
	Name        string `json:"name"`
	Description string `json:"description"`

	// Capacity limits the registry; 0 means unlimited.
	Capacity int `json:"capacity"`

	Steps []Step `json:"steps"`

	// resolved at load time
	path string
}

// Step is a single operation and its expectations. Unset expectations are
// not checked.
type Step struct {
	Op string `json:"op"`

	// Product is the add payload.
	Product *ProductFixture `json:"product,omitempty"`

	// ItemNumber selects the target of every op except add and list.
	ItemNumber int `json:"itemNumber"`

	// UnknownHandle targets a handle the registry never issued.
	UnknownHandle bool `json:"unknownHandle"`

	Quantity int `json:"quantity"`

	// ExpectError is a reason code from models.Reason; "" expects success.
	ExpectError string `json:"expectError"`

	ExpectQuantity *int     `json:"expectQuantity,omitempty"`
	ExpectValue    string   `json:"expectValue,omitempty"`
	ExpectStatus   string   `json:"expectStatus,omitempty"`
	ExpectLen      *int     `json:"expectLen,omitempty"`
	ExpectOrder    []int    `json:"expectOrder,omitempty"`
	ExpectEvents   []string `json:"expectEvents,omitempty"`
}

// ProductFixture is the JSON form of a descriptor. Only the attributes of
// Kind are read.
type ProductFixture struct {
	Kind       string `json:"kind"`
	ItemNumber int    `json:"itemNumber"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`

	// refrigerator
	DoorDesign string  `json:"doorDesign,omitempty"`
	Color      string  `json:"color,omitempty"`
	Capacity   float64 `json:"capacity,omitempty"`

	// tv
	ScreenType  string  `json:"screenType,omitempty"`
	Resolution  string  `json:"resolution,omitempty"`
	DisplaySize float64 `json:"displaySize,omitempty"`

	// washing_machine
	DrumSize int    `json:"drumSize,omitempty"`
	Type     string `json:"type,omitempty"`
	HasDryer bool   `json:"hasDryer,omitempty"`

	// smartphone
	Brand   string `json:"brand,omitempty"`
	Model   string `json:"model,omitempty"`
	Battery int    `json:"battery,omitempty"`
}

// Descriptor converts the fixture. An unknown kind yields a nil descriptor,
// which the registry rejects as unknown_kind.
func (f ProductFixture) Descriptor() (models.Descriptor, error) {
	price := decimal.Zero
	if f.Price != "" {
		p, err := decimal.NewFromString(f.Price)
		if err != nil {
			return nil, fmt.Errorf("price %q: %w", f.Price, err)
		}
		price = p
	}
	attrs := models.Attributes{
		ItemNumber: models.ItemNumber(f.ItemNumber),
		Name:       f.Name,
		Quantity:   f.Quantity,
		Price:      price,
	}

	switch models.Kind(f.Kind) {
	case models.KindRefrigerator:
		return models.RefrigeratorDescriptor{Attributes: attrs, DoorDesign: f.DoorDesign, Color: f.Color, CapacityLitres: f.Capacity}, nil
	case models.KindTV:
		return models.TVDescriptor{Attributes: attrs, ScreenType: f.ScreenType, Resolution: f.Resolution, DisplaySizeInches: f.DisplaySize}, nil
	case models.KindWashingMachine:
		return models.WashingMachineDescriptor{Attributes: attrs, DrumSizeLitres: f.DrumSize, Type: f.Type, HasDryer: f.HasDryer}, nil
	case models.KindSmartPhone:
		return models.SmartPhoneDescriptor{Attributes: attrs, Brand: f.Brand, Model: f.Model, BatteryCapacityMah: f.Battery}, nil
	}
	return nil, nil
}

// ─── Loading ──────────────────────────────────────────────────────────────────

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}

	s.path = abs
	return &s, nil
}

// validate performs basic sanity checks on the loaded scenario.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps are required")
	}
	for i, step := range s.Steps {
		switch step.Op {
		case OpAdd:
			if step.Product == nil {
				return fmt.Errorf("steps[%d]: add needs a product", i)
			}
		case OpAddStock, OpDeduct, OpDiscontinue, OpList, OpValue:
		case "":
			return fmt.Errorf("steps[%d].op is required", i)
		default:
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
	}
	return nil
}

// Path returns the absolute path the scenario was loaded from.
func (s *Scenario) Path() string { return s.path }

// LoadAllFromDir loads every *.json file in dir as a Scenario.
// Files that fail to parse are collected as errors, not panicked.
func LoadAllFromDir(dir string) ([]*Scenario, []error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		return nil, []error{fmt.Errorf("testkit: no scenario files found in %q", dir)}
	}

	var (
		scenarios []*Scenario
		errs      []error
	)
	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, errs
}
