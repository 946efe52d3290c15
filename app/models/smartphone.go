package models

// SmartPhoneDescriptor describes a smartphone to register.
type SmartPhoneDescriptor struct {
	Attributes
	Brand              string
	Model              string
	BatteryCapacityMah int
}

func (SmartPhoneDescriptor) Kind() Kind { return KindSmartPhone }

// SmartPhone is a stored smartphone.
type SmartPhone struct {
	base
	brand              string
	model              string
	batteryCapacityMah int
}

func newSmartPhone(h Handle, d SmartPhoneDescriptor) *SmartPhone {
	return &SmartPhone{
		base:               newBase(h, d.Attributes),
		brand:              d.Brand,
		model:              d.Model,
		batteryCapacityMah: d.BatteryCapacityMah,
	}
}

func (*SmartPhone) Kind() Kind { return KindSmartPhone }

func (s *SmartPhone) Brand() string { return s.brand }
func (s *SmartPhone) Model() string { return s.model }
func (s *SmartPhone) BatteryCapacityMah() int { return s.batteryCapacityMah }

func (s *SmartPhone) Describe() []Field { return s.describe(s.details()) }

func (s *SmartPhone) Snapshot() View {
	c := *s
	return &c
}

func (s *SmartPhone) details() []Field {
	return []Field{
		{Label: "Brand", Value: s.brand},
		{Label: "Model", Value: s.model},
		{Label: "Battery(mAh)", Value: s.batteryCapacityMah},
	}
}
