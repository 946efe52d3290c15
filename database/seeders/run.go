// Package seeders provides a registry of inventory seed functions.
//
// Usage (define a seeder in any file in this package):
//
//	func init() {
//	    seeders.Register("phones", SeedPhones)
//	}
//
//	func SeedPhones(inv *services.Inventory) error {
//	    _, err := inv.Add(models.SmartPhoneDescriptor{...})
//	    return err
//	}
//
// Then run via CLI: stockroom console --seed
package seeders

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/shashiranjanraj/stockroom/app/services"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(inv *services.Inventory) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// Names lists the registered seeders in registration order.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll(inv *services.Inventory, log *slog.Logger) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	if len(current) == 0 {
		log.Info("no seeders registered")
		return nil
	}

	for _, e := range current {
		before := inv.Len()
		if err := e.fn(inv); err != nil {
			log.Error("seeder failed", "seeder", e.name, "error", err)
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		log.Info("seeder done", "seeder", e.name, "added", inv.Len()-before)
	}
	return nil
}
