// Package resource renders product views for people and spreadsheets.
//
// A report is one "label: value" line per field, labels padded to a common
// width:
//
//	fmt.Println(resource.Report(view))
//
// A listing numbers each report the way the console shows it:
//
//	fmt.Print(resource.List(inv.List()))
//
// CSV turns a list of views into a flat export.
package resource

import (
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/stockroom/app/models"
)

// labelWidth pads every label so the colons line up.
const labelWidth = 20

// Format renders a single field value.
func Format(v any) string {
	switch v := v.(type) {
	case models.ItemNumber:
		return v.String()
	case decimal.Decimal:
		return v.StringFixed(2)
	case float64:
		return fmt.Sprintf("%.1f", v)
	case models.DrumSize:
		return fmt.Sprintf("%d L", int(v))
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case models.Status:
		return v.String()
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

// Report renders every field of v, one per line, without a trailing newline.
func Report(v models.View) string {
	fields := v.Describe()
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = fmt.Sprintf("%-*s: %s", labelWidth, f.Label, Format(f.Value))
	}
	return strings.Join(lines, "\n")
}

// List renders the reports of views prefixed by a two-digit 1-based index,
// separated by blank lines.
func List(views []models.View) string {
	var b strings.Builder
	for i, v := range views {
		fmt.Fprintf(&b, "[%02d]\n%s\n\n", i+1, Report(v))
	}
	return b.String()
}

// Row is one line of the CSV export.
type Row struct {
	ItemNumber     string `csv:"item_number"`
	Kind           string `csv:"kind"`
	Name           string `csv:"product_name"`
	Quantity       int    `csv:"quantity_available"`
	Price          string `csv:"price"`
	InventoryValue string `csv:"inventory_value"`
	Status         string `csv:"status"`
	Details        string `csv:"details"`
}

// RowOf flattens v into a CSV row. Variant attributes are joined into the
// details column as "Label=value" pairs.
func RowOf(v models.View) Row {
	var details []string
	for _, f := range v.Describe() {
		switch f.Label {
		case models.LabelItemNumber, models.LabelProductName, models.LabelQuantity,
			models.LabelPrice, models.LabelInventoryValue, models.LabelStatus:
			continue
		}
		details = append(details, f.Label+"="+Format(f.Value))
	}
	return Row{
		ItemNumber:     v.ItemNumber().String(),
		Kind:           v.Kind().Title(),
		Name:           v.Name(),
		Quantity:       v.Quantity(),
		Price:          v.Price().StringFixed(2),
		InventoryValue: v.InventoryValue().StringFixed(2),
		Status:         v.Status().String(),
		Details:        strings.Join(details, "; "),
	}
}

// CSV marshals views, header first, in the order given.
func CSV(views []models.View) ([]byte, error) {
	rows := make([]*Row, len(views))
	for i, v := range views {
		r := RowOf(v)
		rows[i] = &r
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("resource: marshal csv: %w", err)
	}
	return out, nil
}
