package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a priced item. Price is denominated in CurrencyCode.
type Product struct {
	ProductID    uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CurrencyCode CurrencyCode    `json:"currencyCode"`
	AuditFields
}

// ProductPatch holds the optional fields of a product update.
type ProductPatch struct {
	Name         *string
	Price        *decimal.Decimal
	CurrencyCode *string
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.CurrencyCode == nil
}

// Apply validates the patch and copies its non-nil fields onto pr.
func (pr *Product) Apply(p ProductPatch) error {
	next := *pr
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.CurrencyCode != nil {
		code, err := NewCurrencyCode(*p.CurrencyCode)
		if err != nil {
			return err
		}
		next.CurrencyCode = code
	}
	*pr = next
	return nil
}
