package mapping

import (
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/SscSPs/landed_cost_service/internal/models"
)

func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:    d.ProductID,
		Name:         d.Name,
		Price:        d.Price,
		CurrencyCode: d.CurrencyCode.String(),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:    m.ProductID,
		Name:         m.Name,
		Price:        m.Price,
		CurrencyCode: domain.CurrencyCode(m.CurrencyCode),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
