package mapping

import (
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/SscSPs/landed_cost_service/internal/models"
)

// ToModelCurrency converts a domain CurrencyPair to a model Currency
func ToModelCurrency(d domain.CurrencyPair) models.Currency {
	return models.Currency{
		CurrencyID:     d.CurrencyID,
		BaseCode:       d.BaseCode.String(),
		TargetCode:     d.TargetCode.String(),
		ConversionRate: d.ConversionRate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain CurrencyPair
func ToDomainCurrency(m models.Currency) domain.CurrencyPair {
	return domain.CurrencyPair{
		CurrencyID:     m.CurrencyID,
		BaseCode:       domain.CurrencyCode(m.BaseCode),
		TargetCode:     domain.CurrencyCode(m.TargetCode),
		ConversionRate: m.ConversionRate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain CurrencyPairs
func ToDomainCurrencySlice(ms []models.Currency) []domain.CurrencyPair {
	ds := make([]domain.CurrencyPair, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
