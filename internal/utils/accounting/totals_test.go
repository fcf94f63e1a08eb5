package accounting_test

import (
	"testing"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func item(qty, price string) domain.QuoteItem {
	return domain.QuoteItem{Quantity: dec(qty), UnitPrice: dec(price)}
}

func serviceLine(qty, price string) domain.QuoteServiceLine {
	return domain.QuoteServiceLine{Quantity: dec(qty), UnitPrice: dec(price)}
}

func TestCalculatorCompute(t *testing.T) {
	calc := accounting.NewCalculator(dec("0.15"))

	tests := []struct {
		name             string
		items            []domain.QuoteItem
		services         []domain.QuoteServiceLine
		applyFee         bool
		subtotalItems    string
		subtotalServices string
		subtotal         string
		fee              string
		total            string
	}{
		{
			name:             "items and services without fee",
			items:            []domain.QuoteItem{item("10", "35")},
			services:         []domain.QuoteServiceLine{serviceLine("2", "500")},
			applyFee:         false,
			subtotalItems:    "350",
			subtotalServices: "1000",
			subtotal:         "1350",
			fee:              "0",
			total:            "1350",
		},
		{
			name:             "add-on fee on subtotal",
			services:         []domain.QuoteServiceLine{serviceLine("1", "1000")},
			applyFee:         true,
			subtotalItems:    "0",
			subtotalServices: "1000",
			subtotal:         "1000",
			fee:              "150",
			total:            "1150",
		},
		{
			name:          "fractional quantities",
			items:         []domain.QuoteItem{item("2.5", "10.10")},
			applyFee:      false,
			subtotalItems: "25.25",
			subtotal:      "25.25",
			fee:           "0",
			total:         "25.25",
		},
		{
			name:     "fee rounded to two decimal places",
			items:    []domain.QuoteItem{item("1", "0.10")},
			applyFee: true,
			subtotal: "0.1",
			fee:      "0.02",
			total:    "0.12",
		},
		{
			name:     "empty lines yield all zeros",
			applyFee: true,
			subtotal: "0",
			fee:      "0",
			total:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Compute(tt.items, tt.services, tt.applyFee)

			if tt.subtotalItems != "" {
				assert.True(t, got.SubtotalItems.Equal(dec(tt.subtotalItems)), "subtotalItems: got %s", got.SubtotalItems)
			}
			if tt.subtotalServices != "" {
				assert.True(t, got.SubtotalServices.Equal(dec(tt.subtotalServices)), "subtotalServices: got %s", got.SubtotalServices)
			}
			assert.True(t, got.Subtotal.Equal(dec(tt.subtotal)), "subtotal: got %s", got.Subtotal)
			assert.True(t, got.Fee.Equal(dec(tt.fee)), "fee: got %s", got.Fee)
			assert.True(t, got.Total.Equal(dec(tt.total)), "total: got %s", got.Total)

			// subtotal is always the sum of its parts
			assert.True(t, got.Subtotal.Equal(got.SubtotalItems.Add(got.SubtotalServices)))
		})
	}
}

func TestCalculatorComputeNoFeeMeansTotalEqualsSubtotal(t *testing.T) {
	calc := accounting.NewCalculator(dec("0.15"))

	got := calc.Compute(
		[]domain.QuoteItem{item("3", "19.99"), item("1.5", "7")},
		[]domain.QuoteServiceLine{serviceLine("4", "125")},
		false,
	)

	assert.True(t, got.Fee.IsZero())
	assert.True(t, got.Total.Equal(got.Subtotal))
}

func TestLineTotal(t *testing.T) {
	assert.True(t, accounting.LineTotal(dec("2.5"), dec("4")).Equal(dec("10")))
	assert.True(t, accounting.LineTotal(dec("0"), dec("100")).IsZero())
}
