package models

// TVDescriptor describes a television to register.
type TVDescriptor struct {
	Attributes
	ScreenType        string
	Resolution        string
	DisplaySizeInches float64
}

func (TVDescriptor) Kind() Kind { return KindTV }

// TV is a stored television.
type TV struct {
	base
	screenType        string
	resolution        string
	displaySizeInches float64
}

func newTV(h Handle, d TVDescriptor) *TV {
	return &TV{
		base:              newBase(h, d.Attributes),
		screenType:        d.ScreenType,
		resolution:        d.Resolution,
		displaySizeInches: d.DisplaySizeInches,
	}
}

func (*TV) Kind() Kind { return KindTV }

func (t *TV) ScreenType() string { return t.screenType }
func (t *TV) Resolution() string { return t.resolution }
func (t *TV) DisplaySizeInches() float64 { return t.displaySizeInches }

func (t *TV) Describe() []Field { return t.describe(t.details()) }

func (t *TV) Snapshot() View {
	c := *t
	return &c
}

func (t *TV) details() []Field {
	return []Field{
		{Label: "Screen type", Value: t.screenType},
		{Label: "Resolution", Value: t.resolution},
		{Label: "Display size", Value: t.displaySizeInches},
	}
}
