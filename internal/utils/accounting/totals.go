package accounting

import (
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals holds the computed figures for a quote.
type Totals struct {
	SubtotalItems    decimal.Decimal `json:"subtotalItems"`
	SubtotalServices decimal.Decimal `json:"subtotalServices"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Fee              decimal.Decimal `json:"fee"`
	Total            decimal.Decimal `json:"total"`
}

// Calculator computes quote totals with an injected fee rate so the
// rate lives in configuration, not at call sites.
type Calculator struct {
	FeeRate decimal.Decimal
}

// NewCalculator creates a Calculator with the given fee rate (e.g. 0.15).
func NewCalculator(feeRate decimal.Decimal) Calculator {
	return Calculator{FeeRate: feeRate}
}

// Compute turns a quote's line collections and fee flag into totals.
// The fee is a simple add-on: fee = subtotal * rate, total = subtotal + fee.
// The fee is rounded to 2 decimal places of currency precision.
// Pure: no I/O, deterministic for equal inputs.
func (c Calculator) Compute(items []domain.QuoteItem, services []domain.QuoteServiceLine, applyFee bool) Totals {
	subtotalItems := decimal.Zero
	for _, it := range items {
		subtotalItems = subtotalItems.Add(it.Quantity.Mul(it.UnitPrice))
	}

	subtotalServices := decimal.Zero
	for _, sv := range services {
		subtotalServices = subtotalServices.Add(sv.Quantity.Mul(sv.UnitPrice))
	}

	subtotal := subtotalItems.Add(subtotalServices)

	fee := decimal.Zero
	if applyFee {
		fee = subtotal.Mul(c.FeeRate).Round(2)
	}

	return Totals{
		SubtotalItems:    subtotalItems,
		SubtotalServices: subtotalServices,
		Subtotal:         subtotal,
		Fee:              fee,
		Total:            subtotal.Add(fee),
	}
}

// LineTotal computes a single line amount from quantity and unit price.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}
