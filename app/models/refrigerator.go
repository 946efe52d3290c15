package models

// RefrigeratorDescriptor describes a refrigerator to register.
type RefrigeratorDescriptor struct {
	Attributes
	DoorDesign     string
	Color          string
	CapacityLitres float64
}

func (RefrigeratorDescriptor) Kind() Kind { return KindRefrigerator }

// Refrigerator is a stored refrigerator.
type Refrigerator struct {
	base
	doorDesign     string
	color          string
	capacityLitres float64
}

func newRefrigerator(h Handle, d RefrigeratorDescriptor) *Refrigerator {
	return &Refrigerator{
		base:           newBase(h, d.Attributes),
		doorDesign:     d.DoorDesign,
		color:          d.Color,
		capacityLitres: d.CapacityLitres,
	}
}

func (*Refrigerator) Kind() Kind { return KindRefrigerator }

func (r *Refrigerator) DoorDesign() string { return r.doorDesign }
func (r *Refrigerator) Color() string { return r.color }
func (r *Refrigerator) CapacityLitres() float64 { return r.capacityLitres }

func (r *Refrigerator) Describe() []Field { return r.describe(r.details()) }

func (r *Refrigerator) Snapshot() View {
	c := *r
	return &c
}

func (r *Refrigerator) details() []Field {
	return []Field{
		{Label: "Door design", Value: r.doorDesign},
		{Label: "Color", Value: r.color},
		{Label: "Capacity (Litres)", Value: r.capacityLitres},
	}
}
