package models

// WashingMachineDescriptor describes a washing machine to register.
type WashingMachineDescriptor struct {
	Attributes
	DrumSizeLitres int
	Type           string
	HasDryer       bool
}

func (WashingMachineDescriptor) Kind() Kind { return KindWashingMachine }

// WashingMachine is a stored washing machine.
type WashingMachine struct {
	base
	drumSizeLitres int
	machineType    string
	hasDryer       bool
}

func newWashingMachine(h Handle, d WashingMachineDescriptor) *WashingMachine {
	return &WashingMachine{
		base:           newBase(h, d.Attributes),
		drumSizeLitres: d.DrumSizeLitres,
		machineType:    d.Type,
		hasDryer:       d.HasDryer,
	}
}

func (*WashingMachine) Kind() Kind { return KindWashingMachine }

func (w *WashingMachine) DrumSizeLitres() int { return w.drumSizeLitres }
func (w *WashingMachine) Type() string { return w.machineType }
func (w *WashingMachine) HasDryer() bool { return w.hasDryer }

func (w *WashingMachine) Describe() []Field { return w.describe(w.details()) }

func (w *WashingMachine) Snapshot() View {
	c := *w
	return &c
}

// DrumSize is reported in whole litres; the presentation layer appends the unit.
type DrumSize int

func (w *WashingMachine) details() []Field {
	return []Field{
		{Label: "Drum size", Value: DrumSize(w.drumSizeLitres)},
		{Label: "Type", Value: w.machineType},
		{Label: "Has Dryer", Value: w.hasDryer},
	}
}
