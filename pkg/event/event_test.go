package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/stockroom/pkg/event"
)

func TestFireDeliversInOrder(t *testing.T) {
	d := event.New()

	var got []string
	d.Listen("stock.added", func(p any) { got = append(got, "first:"+p.(string)) })
	d.Listen("stock.added", func(p any) { got = append(got, "second:"+p.(string)) })
	d.Listen("other", func(any) { got = append(got, "other") })

	d.Fire("stock.added", "x")

	assert.Equal(t, []string{"first:x", "second:x"}, got)
}

func TestFireWithoutListeners(t *testing.T) {
	d := event.New()
	assert.False(t, d.HasListeners("nothing"))
	assert.NotPanics(t, func() { d.Fire("nothing", nil) })
}

func TestListenerMayRegisterDuringFire(t *testing.T) {
	d := event.New()
	calls := 0
	d.Listen("e", func(any) {
		calls++
		d.Listen("e", func(any) { calls += 10 })
	})

	d.Fire("e", nil)
	assert.Equal(t, 1, calls, "listeners added while firing run from the next event on")

	d.Fire("e", nil)
	assert.Equal(t, 12, calls)
}

func TestFlush(t *testing.T) {
	d := event.New()
	d.Listen("e", func(any) {})
	assert.True(t, d.HasListeners("e"))

	d.Flush()
	assert.False(t, d.HasListeners("e"))
}
