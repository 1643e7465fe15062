package dto

import (
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCountryRequest defines the data needed to create a new country.
type CreateCountryRequest struct {
	Name     string           `json:"name" binding:"required"`
	Code     string           `json:"code" binding:"required,currencycode"`
	DutyRate *decimal.Decimal `json:"dutyRate" binding:"required"`
	TaxRate  *decimal.Decimal `json:"taxRate" binding:"required"`
}

// UpdateCountryRequest is a partial update; omitted fields keep their stored value.
type UpdateCountryRequest struct {
	Name     *string          `json:"name,omitempty"`
	Code     *string          `json:"code,omitempty" binding:"omitempty,currencycode"`
	DutyRate *decimal.Decimal `json:"dutyRate,omitempty"`
	TaxRate  *decimal.Decimal `json:"taxRate,omitempty"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateCountryRequest) ToPatch() domain.CountryPatch {
	return domain.CountryPatch{
		Name:     r.Name,
		Code:     r.Code,
		DutyRate: r.DutyRate,
		TaxRate:  r.TaxRate,
	}
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Code     string          `json:"code"`
	DutyRate decimal.Decimal `json:"dutyRate"`
	TaxRate  decimal.Decimal `json:"taxRate"`
}

// ToCountryResponse converts a domain.Country to CountryResponse DTO
func ToCountryResponse(c *domain.Country) CountryResponse {
	return CountryResponse{
		ID:       c.CountryID.String(),
		Name:     c.Name,
		Code:     c.Code.String(),
		DutyRate: c.DutyRate,
		TaxRate:  c.TaxRate,
	}
}

// ToListCountryResponse converts a slice of domain.Country to response DTOs
func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i := range countries {
		res[i] = ToCountryResponse(&countries[i])
	}
	return res
}
