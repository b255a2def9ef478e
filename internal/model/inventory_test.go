package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestCheckQuantity(t *testing.T) {
	divisible := &Product{IsDivisible: boolPtr(true)}
	indivisible := &Product{IsDivisible: boolPtr(false)}

	inv := Inventory{Product: divisible, Quantity: decimal.NewFromFloat(2.5)}
	assert.NoError(t, inv.CheckQuantity())

	inv = Inventory{Product: indivisible, Quantity: decimal.NewFromFloat(2.5)}
	assert.ErrorIs(t, inv.CheckQuantity(), ErrIndivisibleQuantity)

	inv = Inventory{Product: indivisible, Quantity: decimal.NewFromInt(2)}
	assert.NoError(t, inv.CheckQuantity())

	// Without the product loaded there is nothing to check against.
	inv = Inventory{Quantity: decimal.NewFromFloat(2.5)}
	assert.NoError(t, inv.CheckQuantity())
}

func TestDivisibleDefault(t *testing.T) {
	// Unset means divisible, matching the column default.
	assert.True(t, (&Product{}).Divisible())
	assert.True(t, (&Product{IsDivisible: boolPtr(true)}).Divisible())
	assert.False(t, (&Product{IsDivisible: boolPtr(false)}).Divisible())
}

func TestDiscrepancy(t *testing.T) {
	item := StocktakingItem{
		RecordedQuantity: decimal.NewFromInt(10),
		CountedQuantity:  decimal.NewFromInt(7),
	}
	assert.True(t, item.Discrepancy().Equal(decimal.NewFromInt(-3)))

	item.CountedQuantity = decimal.NewFromInt(10)
	assert.True(t, item.Discrepancy().IsZero())
}
