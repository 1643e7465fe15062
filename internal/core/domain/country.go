package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Country is an import destination with its duty and tax rates expressed as percentages.
type Country struct {
	CountryID uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Code      CurrencyCode    `json:"code"`
	DutyRate  decimal.Decimal `json:"dutyRate"`
	TaxRate   decimal.Decimal `json:"taxRate"`
	AuditFields
}

// CountryPatch holds the optional fields of a country update. Nil fields are left untouched.
type CountryPatch struct {
	Name     *string
	Code     *string
	DutyRate *decimal.Decimal
	TaxRate  *decimal.Decimal
}

// IsEmpty reports whether the patch changes nothing.
func (p CountryPatch) IsEmpty() bool {
	return p.Name == nil && p.Code == nil && p.DutyRate == nil && p.TaxRate == nil
}

// Apply validates the patch and copies its non-nil fields onto c.
// On error c is left unchanged.
func (c *Country) Apply(p CountryPatch) error {
	next := *c
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Code != nil {
		code, err := NewCurrencyCode(*p.Code)
		if err != nil {
			return err
		}
		next.Code = code
	}
	if p.DutyRate != nil {
		next.DutyRate = *p.DutyRate
	}
	if p.TaxRate != nil {
		next.TaxRate = *p.TaxRate
	}
	*c = next
	return nil
}
