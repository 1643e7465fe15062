package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyPair is one directed conversion: amount_in_target = amount_in_base * ConversionRate.
// The reverse direction is an independent row and is never derived from this one.
type CurrencyPair struct {
	CurrencyID     uuid.UUID       `json:"id"`
	BaseCode       CurrencyCode    `json:"baseCode"`
	TargetCode     CurrencyCode    `json:"targetCode"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
	AuditFields
}

// CurrencyPatch holds the optional fields of a currency pair update.
type CurrencyPatch struct {
	BaseCode       *string
	TargetCode     *string
	ConversionRate *decimal.Decimal
}

func (p CurrencyPatch) IsEmpty() bool {
	return p.BaseCode == nil && p.TargetCode == nil && p.ConversionRate == nil
}

// Apply validates the patch and copies its non-nil fields onto c.
func (c *CurrencyPair) Apply(p CurrencyPatch) error {
	next := *c
	if p.BaseCode != nil {
		code, err := NewCurrencyCode(*p.BaseCode)
		if err != nil {
			return err
		}
		next.BaseCode = code
	}
	if p.TargetCode != nil {
		code, err := NewCurrencyCode(*p.TargetCode)
		if err != nil {
			return err
		}
		next.TargetCode = code
	}
	if p.ConversionRate != nil {
		next.ConversionRate = *p.ConversionRate
	}
	*c = next
	return nil
}

// Convert returns amount expressed in the target currency.
func (c CurrencyPair) Convert(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.ConversionRate)
}
