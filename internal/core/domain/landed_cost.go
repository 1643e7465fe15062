package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LandedCostFormula selects how the subtotal is converted into the target currency.
type LandedCostFormula string

const (
	// FormulaSingleRate multiplies the subtotal by the (base -> target) rate.
	FormulaSingleRate LandedCostFormula = "single"
	// FormulaRoundTrip divides by the rate into base, then multiplies by the rate out of base.
	FormulaRoundTrip LandedCostFormula = "roundtrip"
)

// LandedCost is the computed cost of a product delivered into a country. It is never persisted.
type LandedCost struct {
	TotalCost decimal.Decimal `json:"totalCost"`
}

// CostBreakdown holds the intermediate figures of a landed cost, all in the product currency.
type CostBreakdown struct {
	Price    decimal.Decimal
	Duty     decimal.Decimal
	Tax      decimal.Decimal
	Subtotal decimal.Decimal
}

// Breakdown applies the country's duty and tax percentages to the product price.
func Breakdown(product Product, country Country) CostBreakdown {
	duty := product.Price.Mul(country.DutyRate.Div(hundred))
	tax := product.Price.Mul(country.TaxRate.Div(hundred))
	return CostBreakdown{
		Price:    product.Price,
		Duty:     duty,
		Tax:      tax,
		Subtotal: product.Price.Add(duty).Add(tax),
	}
}

// SingleRateTotal is the canonical conversion: subtotal * rate.
func (b CostBreakdown) SingleRateTotal(rate decimal.Decimal) decimal.Decimal {
	return b.Subtotal.Mul(rate)
}

// RoundTripTotal converts through a base currency: subtotal / rateToBase * rateFromBase.
// Callers must ensure rateToBase is not zero.
func (b CostBreakdown) RoundTripTotal(rateToBase, rateFromBase decimal.Decimal) decimal.Decimal {
	return b.Subtotal.Div(rateToBase).Mul(rateFromBase)
}
