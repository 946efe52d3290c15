package testkit

import (
	"github.com/stretchr/testify/mock"

	"github.com/shashiranjanraj/stockroom/app/events"
	"github.com/shashiranjanraj/stockroom/pkg/event"
)

// EventRecorder is a testify mock that records every inventory event it
// hears, in firing order.
//
//	rec := testkit.NewEventRecorder()
//	rec.Listen(inv.Events())
//	inv.AddStock(h, 5)
//	rec.AssertCalled(t, "Fire", events.StockAdded)
type EventRecorder struct {
	mock.Mock
}

// NewEventRecorder accepts any event name.
func NewEventRecorder() *EventRecorder {
	r := &EventRecorder{}
	r.On("Fire", mock.AnythingOfType("string")).Return()
	return r
}

// Listen subscribes the recorder to names on d, or to every inventory event
// when names is empty.
func (r *EventRecorder) Listen(d *event.Dispatcher, names ...string) {
	if len(names) == 0 {
		names = []string{
			events.ProductAdded,
			events.StockAdded,
			events.StockDeducted,
			events.ProductDiscontinued,
			events.StockRejected,
		}
	}
	for _, name := range names {
		d.Listen(name, func(any) { r.MethodCalled("Fire", name) })
	}
}

// Fired returns the recorded event names since the last Reset.
func (r *EventRecorder) Fired() []string {
	out := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		out = append(out, c.Arguments.String(0))
	}
	return out
}

// Reset drops the recorded calls and keeps the expectation.
func (r *EventRecorder) Reset() { r.Calls = nil }
