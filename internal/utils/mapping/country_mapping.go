package mapping

import (
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/SscSPs/landed_cost_service/internal/models"
)

// ToModelCountry converts a domain Country to a model Country
func ToModelCountry(d domain.Country) models.Country {
	return models.Country{
		CountryID:   d.CountryID,
		Name:        d.Name,
		Code:        d.Code.String(),
		DutyRate:    d.DutyRate,
		TaxRate:     d.TaxRate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCountry converts a model Country to a domain Country.
// Stored codes were validated on write, so they are trusted here.
func ToDomainCountry(m models.Country) domain.Country {
	return domain.Country{
		CountryID:   m.CountryID,
		Name:        m.Name,
		Code:        domain.CurrencyCode(m.Code),
		DutyRate:    m.DutyRate,
		TaxRate:     m.TaxRate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCountrySlice converts a slice of model Countries to a slice of domain Countries
func ToDomainCountrySlice(ms []models.Country) []domain.Country {
	ds := make([]domain.Country, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCountry(m)
	}
	return ds
}
