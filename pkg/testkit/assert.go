package testkit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/stockroom/app/models"
)

// AssertReason checks err against a reason code; "" expects no error.
func AssertReason(t *testing.T, label, want string, err error) bool {
	t.Helper()
	if want == "" {
		return assert.NoError(t, err, "[%s] unexpected error", label)
	}
	if !assert.Error(t, err, "[%s] expected %s", label, want) {
		return false
	}
	return assert.Equal(t, want, models.Reason(err), "[%s] reason mismatch: %v", label, err)
}

// AssertDecimal compares a money amount numerically, so "9999.9" and
// "9999.90" are equal.
func AssertDecimal(t *testing.T, label, want string, got decimal.Decimal) bool {
	t.Helper()
	exp, err := decimal.NewFromString(want)
	if !assert.NoError(t, err, "[%s] bad expected amount %q", label, want) {
		return false
	}
	return assert.True(t, exp.Equal(got), "[%s] amount mismatch: want %s, got %s", label, exp.StringFixed(2), got.StringFixed(2))
}

// AssertEvents checks the recorder heard exactly want, in order.
func AssertEvents(t *testing.T, label string, want []string, rec *EventRecorder) bool {
	t.Helper()
	return assert.Equal(t, want, rec.Fired(), "[%s] events mismatch", label)
}
