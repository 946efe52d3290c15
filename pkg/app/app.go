// Package app wires a stockroom runtime from configuration.
//
//	rt, err := app.New().Seed(true).Boot(ctx)
//	if err != nil { ... }
//	err = rt.Console(os.Stdin, os.Stdout).Run(ctx)
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/shashiranjanraj/stockroom/app/listeners"
	"github.com/shashiranjanraj/stockroom/app/services"
	"github.com/shashiranjanraj/stockroom/config"
	"github.com/shashiranjanraj/stockroom/database/seeders"
	"github.com/shashiranjanraj/stockroom/internal/console"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
	"github.com/shashiranjanraj/stockroom/pkg/metrics"
	"github.com/shashiranjanraj/stockroom/pkg/storage"
)

// Application collects boot options. Build one with New, then call Boot.
type Application struct {
	capacity *int
	seed     bool
	runtime  bool
	disks    *storage.Manager
	log      *slog.Logger
}

// New creates an Application that reads everything else from config.
func New() *Application {
	return &Application{runtime: true}
}

// Capacity overrides MAX_PRODUCTS; n <= 0 means unlimited.
func (a *Application) Capacity(n int) *Application {
	a.capacity = &n
	return a
}

// Seed runs the registered seeders after boot.
func (a *Application) Seed(on bool) *Application {
	a.seed = on
	return a
}

// RuntimeMetrics toggles the Go runtime and process collectors.
func (a *Application) RuntimeMetrics(on bool) *Application {
	a.runtime = on
	return a
}

// Storage uses m instead of connecting the configured disks.
func (a *Application) Storage(m *storage.Manager) *Application {
	a.disks = m
	return a
}

// Logger replaces the logger found in the boot context.
func (a *Application) Logger(l *slog.Logger) *Application {
	a.log = l
	return a
}

// Runtime is a booted application.
type Runtime struct {
	Inventory   *services.Inventory
	Metrics     *metrics.Inventory
	Disks       *storage.Manager // nil when no disk could be connected
	MetricsPath string
}

// Boot builds the inventory, subscribes metrics to it, seeds it when asked
// and connects storage. A storage failure only disables exports.
func (a *Application) Boot(ctx context.Context) (*Runtime, error) {
	log := a.log
	if log == nil {
		log = logger.WithCtx(ctx)
	}

	capacity := config.MaxProducts()
	if a.capacity != nil {
		capacity = *a.capacity
	}

	inv := services.NewInventory(services.WithCapacity(capacity), services.WithLogger(log))
	m := metrics.NewInventory(nil)
	if a.runtime {
		m.WithRuntime()
	}
	listeners.RegisterMetrics(inv.Events(), m)

	if a.seed {
		if err := seeders.RunAll(inv, log); err != nil {
			return nil, err
		}
	}

	disks := a.disks
	if disks == nil {
		var err error
		if disks, err = storage.Connect(ctx); err != nil {
			log.Warn("storage unavailable, export disabled", "error", err)
			disks = nil
		}
	}

	log.Info("application booted", "capacity", capacity, "products", inv.Len(), "storage", disks != nil)
	return &Runtime{
		Inventory:   inv,
		Metrics:     m,
		Disks:       disks,
		MetricsPath: config.MetricsExport(),
	}, nil
}

// Console opens a session over the runtime's inventory.
func (r *Runtime) Console(in io.Reader, out io.Writer, opts ...console.Option) *console.Session {
	base := []console.Option{console.WithMetrics(r.Metrics, r.MetricsPath)}
	if r.Disks != nil {
		base = append(base, console.WithStorage(r.Disks))
	}
	return console.New(r.Inventory, in, out, append(base, opts...)...)
}
