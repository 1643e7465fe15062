package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Country is the row shape of the countries table.
type Country struct {
	CountryID uuid.UUID       `db:"country_id"`
	Name      string          `db:"name"`
	Code      string          `db:"code"`
	DutyRate  decimal.Decimal `db:"duty_rate"` // percentage, e.g. 3.5
	TaxRate   decimal.Decimal `db:"tax_rate"`
	AuditFields
}
