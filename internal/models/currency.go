package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is a directed conversion row: one unit of BaseCode buys ConversionRate units of TargetCode.
type Currency struct {
	CurrencyID     uuid.UUID       `db:"currency_id"`
	BaseCode       string          `db:"base_code"`
	TargetCode     string          `db:"target_code"`
	ConversionRate decimal.Decimal `db:"conversion_rate"`
	AuditFields
}
