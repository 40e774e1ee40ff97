package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/remodj/billing-api/pkg/money"
)

func TestFormat_TwoDecimalsAlways(t *testing.T) {
	assert.Equal(t, "₹1,000.00", money.Format(decimal.RequireFromString("1000")))
	assert.Equal(t, "₹23,625.00", money.Format(decimal.RequireFromString("23625")))
	assert.Equal(t, "₹0.00", money.Format(decimal.Zero))
}

// Indian digit grouping: lakhs and crores, not thousands throughout.
func TestFormat_IndianGrouping(t *testing.T) {
	assert.Equal(t, "₹1,23,456.00", money.Format(decimal.RequireFromString("123456")))
	assert.Equal(t, "₹1,00,00,000.00", money.Format(decimal.RequireFromString("10000000")))
}

func TestFormat_RoundsAtDisplayBoundary(t *testing.T) {
	assert.Equal(t, "₹31.67", money.Format(decimal.RequireFromString("31.665")))
}

func TestFormat_NegativeAmount(t *testing.T) {
	assert.Equal(t, "₹-400.00", money.Format(decimal.RequireFromString("-400")))
}
