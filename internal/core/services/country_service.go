package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portsrepo "github.com/SscSPs/landed_cost_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/google/uuid"
)

// countryService handles business logic related to countries.
type countryService struct {
	BaseService
	countryRepo portsrepo.CountryRepositoryFacade
}

// NewCountryService creates a new country service.
func NewCountryService(countryRepo portsrepo.CountryRepositoryFacade) portssvc.CountrySvcFacade {
	return &countryService{countryRepo: countryRepo}
}

var _ portssvc.CountrySvcFacade = (*countryService)(nil)

func (s *countryService) Countries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list countries")
		return nil, fmt.Errorf("failed to list countries in service: %w", err)
	}
	if countries == nil {
		return []domain.Country{}, nil
	}
	return countries, nil
}

func (s *countryService) Country(ctx context.Context, countryID *uuid.UUID, name, code *string) (*domain.Country, error) {
	chosen, err := selectOne("country", arg("countryId", countryID != nil), arg("name", name != nil), arg("code", code != nil))
	if err != nil {
		return nil, err
	}
	switch chosen {
	case "countryId":
		return s.CountryByID(ctx, *countryID)
	case "name":
		return s.CountryByName(ctx, *name)
	default:
		return s.CountryByCode(ctx, *code)
	}
}

func (s *countryService) CountryByID(ctx context.Context, countryID uuid.UUID) (*domain.Country, error) {
	country, err := nilIfNotFound(s.countryRepo.FindCountryByID(ctx, countryID))
	if err != nil {
		return nil, fmt.Errorf("failed to get country by id in service: %w", err)
	}
	return country, nil
}

func (s *countryService) CountryByName(ctx context.Context, name string) (*domain.Country, error) {
	country, err := nilIfNotFound(s.countryRepo.FindCountryByName(ctx, name))
	if err != nil {
		return nil, fmt.Errorf("failed to get country by name in service: %w", err)
	}
	return country, nil
}

func (s *countryService) CountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	validCode, err := domain.NewCurrencyCode(code)
	if err != nil {
		return nil, err
	}
	country, err := nilIfNotFound(s.countryRepo.FindCountryByCode(ctx, validCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get country by code in service: %w", err)
	}
	return country, nil
}

func (s *countryService) AddCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error) {
	code, err := domain.NewCurrencyCode(req.Code)
	if err != nil {
		return nil, err
	}
	dutyRate, err := requiredDecimal("addCountry", "dutyRate", req.DutyRate)
	if err != nil {
		return nil, err
	}
	taxRate, err := requiredDecimal("addCountry", "taxRate", req.TaxRate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	country := domain.Country{
		CountryID: uuid.New(),
		Name:      req.Name,
		Code:      code,
		DutyRate:  dutyRate,
		TaxRate:   taxRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.countryRepo.SaveCountry(ctx, country); err != nil {
		s.LogError(ctx, err, "Failed to save country", slog.String("country_name", req.Name))
		return nil, fmt.Errorf("failed to create country in service: %w", err)
	}

	s.LogInfo(ctx, "Country created", slog.String("country_id", country.CountryID.String()), slog.String("code", code.String()))
	return &country, nil
}

func (s *countryService) UpdateCountry(ctx context.Context, countryID *uuid.UUID, name *string, req dto.UpdateCountryRequest) (*domain.Country, error) {
	chosen, err := selectOne("updateCountry", arg("countryId", countryID != nil), arg("name", name != nil))
	if err != nil {
		return nil, err
	}

	var existing *domain.Country
	if chosen == "countryId" {
		existing, err = s.countryRepo.FindCountryByID(ctx, *countryID)
		err = notFoundAs(err, fmt.Sprintf("Country with id %s not found.", *countryID))
	} else {
		existing, err = s.countryRepo.FindCountryByName(ctx, *name)
		err = notFoundAs(err, fmt.Sprintf("Country with name %s not found.", *name))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load country for update: %w", err)
	}

	if err := existing.Apply(req.ToPatch()); err != nil {
		return nil, err
	}
	existing.LastUpdatedAt = time.Now()

	if err := s.countryRepo.SaveCountry(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update country", slog.String("country_id", existing.CountryID.String()))
		return nil, fmt.Errorf("failed to update country in service: %w", err)
	}
	return existing, nil
}

func (s *countryService) UpdateCountryByID(ctx context.Context, countryID uuid.UUID, req dto.UpdateCountryRequest) (*domain.Country, error) {
	return s.UpdateCountry(ctx, &countryID, nil, req)
}

func (s *countryService) UpdateCountryByName(ctx context.Context, name string, req dto.UpdateCountryRequest) (*domain.Country, error) {
	return s.UpdateCountry(ctx, nil, &name, req)
}

func (s *countryService) DeleteCountryByID(ctx context.Context, countryID uuid.UUID) (*domain.DeleteItemResponse, error) {
	existing, err := nilIfNotFound(s.countryRepo.FindCountryByID(ctx, countryID))
	if err != nil {
		return nil, fmt.Errorf("failed to load country for delete: %w", err)
	}
	if existing == nil {
		return notDeleted("country", countryID), nil
	}

	if err := s.countryRepo.DeleteCountry(ctx, countryID); err != nil {
		s.LogError(ctx, err, "Failed to delete country", slog.String("country_id", countryID.String()))
		return nil, fmt.Errorf("failed to delete country in service: %w", err)
	}

	s.LogInfo(ctx, "Country deleted", slog.String("country_id", countryID.String()))
	return deleted(existing.Name, countryID), nil
}

// notFoundAs replaces a bare repository not-found with a descriptive one.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(msg)
	}
	return err
}

func notDeleted(kind string, id uuid.UUID) *domain.DeleteItemResponse {
	return &domain.DeleteItemResponse{
		Success: false,
		Message: fmt.Sprintf("unable to find %s with the id %s", kind, id),
	}
}

func deleted(label string, id uuid.UUID) *domain.DeleteItemResponse {
	deletedID := id.String()
	return &domain.DeleteItemResponse{
		Success:       true,
		Message:       fmt.Sprintf("'%s' has been successfully deleted.", label),
		DeletedItemID: &deletedID,
	}
}
