// Package console runs the interactive stock management session.
package console

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/stockroom/app/controllers"
	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/services"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
	"github.com/shashiranjanraj/stockroom/pkg/metrics"
	"github.com/shashiranjanraj/stockroom/pkg/resource"
	"github.com/shashiranjanraj/stockroom/pkg/storage"
)

// errEOF ends the session when input runs out.
var errEOF = errors.New("console: end of input")

// Session is one operator session over an Inventory.
type Session struct {
	inv  *services.Inventory
	ctrl *controllers.InventoryController

	in  *bufio.Scanner
	out io.Writer

	disks       *storage.Manager
	metrics     *metrics.Inventory
	metricsPath string

	log *slog.Logger
	now func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithStorage enables CSV export and the metrics dump.
func WithStorage(m *storage.Manager) Option {
	return func(s *Session) { s.disks = m }
}

// WithMetrics writes m to path on the default disk when the session ends.
// An empty path disables the dump.
func WithMetrics(m *metrics.Inventory, path string) Option {
	return func(s *Session) {
		s.metrics = m
		s.metricsPath = path
	}
}

// WithClock overrides the clock used for the banner and export names.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(inv *services.Inventory, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		inv:  inv,
		ctrl: controllers.NewInventoryController(inv),
		in:   bufio.NewScanner(in),
		out:  out,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the session until the operator exits or input ends. Running
// out of input is a normal exit.
func (s *Session) Run(ctx context.Context) error {
	s.log = logger.WithCtx(ctx).With("session_id", uuid.NewString())
	ctx = logger.InjectLogger(ctx, s.log)
	s.log.Info("session started", "capacity", s.inv.Capacity(), "products", s.inv.Len())

	err := s.run(ctx)
	if errors.Is(err, errEOF) {
		s.log.Info("input closed")
		err = nil
	}
	if err != nil {
		s.log.Error("session failed", "error", err)
		return err
	}

	s.dumpMetrics(ctx)
	fmt.Fprintln(s.out, "Goodbye.")
	s.log.Info("session ended", "products", s.inv.Len())
	return nil
}

func (s *Session) run(ctx context.Context) error {
	s.banner()

	if err := s.initialProducts(); err != nil {
		return err
	}

	for {
		choice, err := s.menu()
		if err != nil {
			return err
		}
		if choice == 0 {
			fmt.Fprintln(s.out, "Exiting the program.")
			return nil
		}
		if err := s.execute(ctx, choice); err != nil {
			return err
		}
	}
}

func (s *Session) banner() {
	fmt.Fprintln(s.out, "Welcome to the Stock Management System")
	fmt.Fprintf(s.out, "Current date and time: %s\n", s.now().Format("2006/01/02 15:04:05"))
	if c := s.inv.Capacity(); c > 0 {
		fmt.Fprintf(s.out, "Products: %d of %d\n", s.inv.Len(), c)
	}
}

func (s *Session) initialProducts() error {
	remaining := s.inv.Remaining()
	if remaining == 0 {
		fmt.Fprintln(s.out, s.ctrl.MaxProductsMessage())
		return nil
	}
	n, err := s.askInt("\nHow many products do you want to add (0 to skip): ", "product count", 0, remaining)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(s.out, "No products added.")
		return nil
	}
	return s.addProducts(n)
}

const (
	optView        = 1
	optAddStock    = 2
	optDeductStock = 3
	optDiscontinue = 4
	optAddProduct  = 5
	optSummary     = 6
	optExport      = 7
)

func (s *Session) menu() (int, error) {
	fmt.Fprintln(s.out, "\n--- Menu ---")
	fmt.Fprintln(s.out, "1. View products")
	fmt.Fprintln(s.out, "2. Add stock")
	fmt.Fprintln(s.out, "3. Deduct stock")
	fmt.Fprintln(s.out, "4. Discontinue product")
	fmt.Fprintln(s.out, "5. Add product")
	fmt.Fprintln(s.out, "6. Inventory summary")
	fmt.Fprintln(s.out, "7. Export products to CSV")
	fmt.Fprintln(s.out, "0. Exit")
	return s.askInt("Please enter a menu option: ", "menu option", 0, optExport)
}

func (s *Session) execute(ctx context.Context, choice int) error {
	switch choice {
	case optView:
		s.view()
	case optAddStock:
		return s.addStock()
	case optDeductStock:
		return s.deductStock()
	case optDiscontinue:
		return s.discontinue()
	case optAddProduct:
		return s.addProduct()
	case optSummary:
		s.summary()
	case optExport:
		s.export(ctx)
	}
	return nil
}

func (s *Session) view() {
	fmt.Fprintln(s.out, "\n--- Product List ---")
	views := s.inv.List()
	if len(views) == 0 {
		fmt.Fprintln(s.out, "No products registered.")
		return
	}
	fmt.Fprint(s.out, resource.List(views))
}

// selectProduct lists the products and reads a 1-based index. It returns
// nil when the operator cancels or nothing is registered.
func (s *Session) selectProduct() (models.View, error) {
	views := s.inv.List()
	s.view()
	if len(views) == 0 {
		return nil, nil
	}
	prompt := fmt.Sprintf("Select a product by index (1-%d, 0 to cancel): ", len(views))
	idx, err := s.askInt(prompt, "index", 0, len(views))
	if err != nil || idx == 0 {
		return nil, err
	}
	return views[idx-1], nil
}

func (s *Session) addStock() error {
	v, err := s.selectProduct()
	if err != nil {
		return err
	}
	if v == nil {
		fmt.Fprintln(s.out, "Add stock canceled.")
		return nil
	}
	if !v.Active() {
		fmt.Fprintln(s.out, controllers.MsgAddDiscontinued)
		return nil
	}
	q, err := s.askNonNegative("Enter quantity to add: ", "quantity")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.ctrl.AddStock(v.Handle(), q).Message)
	return nil
}

func (s *Session) deductStock() error {
	v, err := s.selectProduct()
	if err != nil {
		return err
	}
	if v == nil {
		fmt.Fprintln(s.out, "Deduct stock canceled.")
		return nil
	}
	if !v.Active() {
		fmt.Fprintln(s.out, controllers.MsgDeductDiscontinued)
		return nil
	}
	for {
		q, err := s.askNonNegative("Enter quantity to deduct: ", "quantity")
		if err != nil {
			return err
		}
		if q > v.Quantity() {
			fmt.Fprintln(s.out, "Quantity exceeds stock. Re-enter.")
			continue
		}
		fmt.Fprintln(s.out, s.ctrl.DeductStock(v.Handle(), q).Message)
		return nil
	}
}

func (s *Session) discontinue() error {
	v, err := s.selectProduct()
	if err != nil {
		return err
	}
	if v == nil {
		fmt.Fprintln(s.out, "Discontinue canceled.")
		return nil
	}
	fmt.Fprintln(s.out, s.ctrl.Discontinue(v.Handle()).Message)
	return nil
}

func (s *Session) summary() {
	sum := s.inv.Summary()
	fmt.Fprintln(s.out, "\n--- Inventory Summary ---")
	fmt.Fprintf(s.out, "%-20s: %d\n", "Products", sum.Products)
	fmt.Fprintf(s.out, "%-20s: %d\n", "Active", sum.Active)
	fmt.Fprintf(s.out, "%-20s: %d\n", "Discontinued", sum.Discontinued)
	fmt.Fprintf(s.out, "%-20s: %d\n", "Units in stock", sum.Units)
	fmt.Fprintf(s.out, "%-20s: %s\n", "Inventory value", sum.Value.StringFixed(2))
	if c := s.inv.Capacity(); c > 0 {
		fmt.Fprintf(s.out, "%-20s: %d\n", "Free slots", s.inv.Remaining())
	}
}

func (s *Session) export(ctx context.Context) {
	views := s.inv.List()
	if len(views) == 0 {
		fmt.Fprintln(s.out, "No products to export.")
		return
	}
	disk, err := s.disk()
	if err != nil {
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	path := freePath(ctx, disk, "exports/products-"+s.now().Format("20060102-150405"), ".csv")
	url, err := s.write(ctx, disk, path, func(w io.Writer) error {
		data, err := resource.CSV(views)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	if err != nil {
		s.log.Error("export failed", "path", path, "error", err)
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	s.log.Info("products exported", "path", path, "products", len(views))
	fmt.Fprintf(s.out, "Exported %d products to %s\n", len(views), url)
}

func (s *Session) dumpMetrics(ctx context.Context) {
	if s.metrics == nil || s.metricsPath == "" {
		return
	}
	disk, err := s.disk()
	if err != nil {
		s.log.Error("metrics dump failed", "path", s.metricsPath, "error", err)
		return
	}
	url, err := s.write(ctx, disk, s.metricsPath, s.metrics.Dump)
	if err != nil {
		s.log.Error("metrics dump failed", "path", s.metricsPath, "error", err)
		return
	}
	s.log.Info("metrics written", "url", url)
}

func (s *Session) disk() (storage.Disk, error) {
	if s.disks == nil {
		return nil, storage.ErrDiskNotConfigured
	}
	return s.disks.Default()
}

// freePath returns base+ext, or base-N+ext for the first N not yet taken,
// so an earlier export is never overwritten.
func freePath(ctx context.Context, disk storage.Disk, base, ext string) string {
	path := base + ext
	for i := 1; disk.Exists(ctx, path); i++ {
		path = fmt.Sprintf("%s-%d%s", base, i, ext)
	}
	return path
}

// write renders into a buffer and stores it on disk.
func (s *Session) write(ctx context.Context, disk storage.Disk, path string, render func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return "", err
	}
	if err := disk.Put(ctx, path, buf.Bytes()); err != nil {
		return "", err
	}
	return disk.URL(path), nil
}
