// Package listeners subscribes side concerns to inventory events.
package listeners

import (
	"github.com/shashiranjanraj/stockroom/app/events"
	"github.com/shashiranjanraj/stockroom/pkg/event"
	"github.com/shashiranjanraj/stockroom/pkg/metrics"
)

// RegisterMetrics feeds every inventory event on d into m.
func RegisterMetrics(d *event.Dispatcher, m *metrics.Inventory) {
	d.Listen(events.ProductAdded, func(payload any) {
		if e, ok := payload.(events.ProductAddedEvent); ok {
			m.ObserveAdded(string(e.Kind))
		}
	})
	d.Listen(events.StockAdded, func(payload any) {
		if e, ok := payload.(events.StockChangedEvent); ok {
			m.ObserveMovement("in", e.Delta())
		}
	})
	d.Listen(events.StockDeducted, func(payload any) {
		if e, ok := payload.(events.StockChangedEvent); ok {
			m.ObserveMovement("out", -e.Delta())
		}
	})
	d.Listen(events.ProductDiscontinued, func(any) {
		m.ObserveDiscontinued()
	})
	d.Listen(events.StockRejected, func(payload any) {
		if e, ok := payload.(events.StockRejectedEvent); ok {
			m.ObserveRejection(e.Operation, e.Reason)
		}
	})
}
