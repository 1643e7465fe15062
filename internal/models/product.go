package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the row shape of the products table.
type Product struct {
	ProductID    uuid.UUID       `db:"product_id"`
	Name         string          `db:"name"`
	Price        decimal.Decimal `db:"price"`
	CurrencyCode string          `db:"currency_code"`
	AuditFields
}
