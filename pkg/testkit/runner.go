package testkit

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/services"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
)

// ─── Public API ───────────────────────────────────────────────────────────────

// Run executes a single scenario from a JSON file against a fresh registry.
//
// Lifecycle per scenario:
//  1. Load the scenario JSON file.
//  2. Build an Inventory with the scenario capacity and opts.
//  3. Subscribe an EventRecorder to its dispatcher.
//  4. For each step: run the op, check the reason code, then the
//     quantity, value, status, length, order and event expectations.
func Run(t *testing.T, scenarioPath string, opts ...services.Option) {
	t.Helper()

	s, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("testkit: load scenario %q: %v", scenarioPath, err)
	}

	t.Run(s.Name, func(t *testing.T) {
		runScenario(t, s, opts)
	})
}

// RunDir discovers every *.json file in dir and runs each as a t.Run subtest.
// Scenario files that fail to parse are reported as test failures (not fatal).
func RunDir(t *testing.T, dir string, opts ...services.Option) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			t.Errorf("testkit: load %q: %v", path, err)
			continue
		}

		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, s, opts)
		})
	}
}

// ─── Internal execution ───────────────────────────────────────────────────────

func runScenario(t *testing.T, s *Scenario, opts []services.Option) {
	t.Helper()

	base := []services.Option{
		services.WithCapacity(s.Capacity),
		services.WithLogger(logger.Discard()),
	}
	inv := services.NewInventory(append(base, opts...)...)

	rec := NewEventRecorder()
	rec.Listen(inv.Events())

	handles := map[models.ItemNumber]models.Handle{}

	for i, step := range s.Steps {
		label := fmt.Sprintf("%s: step %d %s", s.Name, i+1, step.Op)
		rec.Reset()

		target, known := handles[models.ItemNumber(step.ItemNumber)]
		if step.UnknownHandle {
			target, known = models.NewHandle(), false
		}

		if needsTarget(step.Op) && !step.UnknownHandle && !known {
			t.Fatalf("[%s] item %04d was never added", label, step.ItemNumber)
		}

		var err error
		switch step.Op {
		case OpAdd:
			d, derr := step.Product.Descriptor()
			if derr != nil {
				t.Fatalf("[%s] %v", label, derr)
			}
			var h models.Handle
			h, err = inv.Add(d)
			if err == nil {
				handles[models.ItemNumber(step.Product.ItemNumber)] = h
				target, known = h, true
			}
		case OpAddStock:
			err = inv.AddStock(target, step.Quantity)
		case OpDeduct:
			err = inv.DeductStock(target, step.Quantity)
		case OpDiscontinue:
			err = inv.Discontinue(target)
		}

		AssertReason(t, label, step.ExpectError, err)
		checkProduct(t, label, inv, step, target, known)

		if step.ExpectLen != nil {
			assert.Equal(t, *step.ExpectLen, inv.Len(), "[%s] registry size", label)
		}
		if step.ExpectOrder != nil {
			got := make([]int, 0, inv.Len())
			for _, v := range inv.List() {
				got = append(got, int(v.ItemNumber()))
			}
			assert.Equal(t, step.ExpectOrder, got, "[%s] list order", label)
		}
		if step.ExpectEvents != nil {
			AssertEvents(t, label, step.ExpectEvents, rec)
		}
	}
}

func needsTarget(op string) bool {
	switch op {
	case OpAddStock, OpDeduct, OpDiscontinue, OpValue:
		return true
	}
	return false
}

func checkProduct(t *testing.T, label string, inv *services.Inventory, step Step, h models.Handle, known bool) {
	t.Helper()

	if step.ExpectQuantity == nil && step.ExpectValue == "" && step.ExpectStatus == "" {
		return
	}
	if !known {
		t.Errorf("[%s] product expectations need a registered product", label)
		return
	}
	v, err := inv.Get(h)
	if !assert.NoError(t, err, "[%s] get product", label) {
		return
	}
	if step.ExpectQuantity != nil {
		assert.Equal(t, *step.ExpectQuantity, v.Quantity(), "[%s] quantity", label)
	}
	if step.ExpectValue != "" {
		AssertDecimal(t, label, step.ExpectValue, v.InventoryValue())
	}
	if step.ExpectStatus != "" {
		assert.Equal(t, step.ExpectStatus, v.Status().String(), "[%s] status", label)
	}
}
