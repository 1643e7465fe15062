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

// currencyService handles business logic related to directed currency pairs.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	liveRates    portssvc.LiveRateProvider
}

// NewCurrencyService creates a new currency service. liveRates backs UpdateCurrencyRateToLiveByID.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, liveRates portssvc.LiveRateProvider) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo: currencyRepo,
		liveRates:    liveRates,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) Currencies(ctx context.Context) ([]domain.CurrencyPair, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	return emptyIfNil(currencies), nil
}

func (s *currencyService) Currency(ctx context.Context, baseCode, targetCode string) (*domain.CurrencyPair, error) {
	base, target, err := parsePair(baseCode, targetCode)
	if err != nil {
		return nil, err
	}
	currency, err := nilIfNotFound(s.currencyRepo.FindCurrencyByCodes(ctx, base, target))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) CurrenciesBy(ctx context.Context, baseCode, targetCode *string) ([]domain.CurrencyPair, error) {
	switch {
	case baseCode != nil && targetCode != nil:
		return nil, apperrors.NewInvalidArgumentError("currenciesBy: Only one of either baseCode or targetCode can be specified. Not both.")
	case baseCode != nil:
		return s.CurrenciesByBaseCode(ctx, *baseCode)
	case targetCode != nil:
		return s.CurrenciesByTargetCode(ctx, *targetCode)
	default:
		return s.Currencies(ctx)
	}
}

func (s *currencyService) CurrenciesByBaseCode(ctx context.Context, baseCode string) ([]domain.CurrencyPair, error) {
	code, err := domain.NewCurrencyCode(baseCode)
	if err != nil {
		return nil, err
	}
	currencies, err := s.currencyRepo.ListCurrenciesByBaseCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies by base code in service: %w", err)
	}
	return emptyIfNil(currencies), nil
}

func (s *currencyService) CurrenciesByTargetCode(ctx context.Context, targetCode string) ([]domain.CurrencyPair, error) {
	code, err := domain.NewCurrencyCode(targetCode)
	if err != nil {
		return nil, err
	}
	currencies, err := s.currencyRepo.ListCurrenciesByTargetCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies by target code in service: %w", err)
	}
	return emptyIfNil(currencies), nil
}

func (s *currencyService) AddCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.CurrencyPair, error) {
	base, target, err := parsePair(req.BaseCode, req.TargetCode)
	if err != nil {
		return nil, err
	}
	rate, err := requiredDecimal("addCurrency", "conversionRate", req.ConversionRate)
	if err != nil {
		return nil, err
	}

	if err := s.ensurePairFree(ctx, base, target, uuid.Nil); err != nil {
		return nil, err
	}

	now := time.Now()
	currency := domain.CurrencyPair{
		CurrencyID:     uuid.New(),
		BaseCode:       base,
		TargetCode:     target,
		ConversionRate: rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("base_code", base.String()), slog.String("target_code", target.String()))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency pair created", slog.String("currency_id", currency.CurrencyID.String()))
	return &currency, nil
}

func (s *currencyService) UpdateCurrencyByID(ctx context.Context, currencyID uuid.UUID, req dto.UpdateCurrencyRequest) (*domain.CurrencyPair, error) {
	existing, err := s.loadForUpdate(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	before := *existing
	if err := existing.Apply(req.ToPatch()); err != nil {
		return nil, err
	}
	if existing.BaseCode != before.BaseCode || existing.TargetCode != before.TargetCode {
		if err := s.ensurePairFree(ctx, existing.BaseCode, existing.TargetCode, currencyID); err != nil {
			return nil, err
		}
	}
	existing.LastUpdatedAt = time.Now()

	if err := s.currencyRepo.SaveCurrency(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update currency", slog.String("currency_id", currencyID.String()))
		return nil, fmt.Errorf("failed to update currency in service: %w", err)
	}
	return existing, nil
}

func (s *currencyService) UpdateCurrencyRateToLiveByID(ctx context.Context, currencyID uuid.UUID) (*domain.CurrencyPair, error) {
	existing, err := s.loadForUpdate(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	rate, err := s.liveRates.LatestRate(ctx, existing.BaseCode, existing.TargetCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch live rate",
			slog.String("base_code", existing.BaseCode.String()),
			slog.String("target_code", existing.TargetCode.String()))
		return nil, fmt.Errorf("failed to update currency to live rate: %w", err)
	}

	existing.ConversionRate = rate
	existing.LastUpdatedAt = time.Now()

	if err := s.currencyRepo.SaveCurrency(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to persist live rate", slog.String("currency_id", currencyID.String()))
		return nil, fmt.Errorf("failed to update currency to live rate: %w", err)
	}

	s.LogInfo(ctx, "Currency rate refreshed from live provider",
		slog.String("currency_id", currencyID.String()),
		slog.String("rate", rate.String()))
	return existing, nil
}

func (s *currencyService) DeleteCurrencyByID(ctx context.Context, currencyID uuid.UUID) (*domain.DeleteItemResponse, error) {
	existing, err := nilIfNotFound(s.currencyRepo.FindCurrencyByID(ctx, currencyID))
	if err != nil {
		return nil, fmt.Errorf("failed to load currency for delete: %w", err)
	}
	if existing == nil {
		return notDeleted("currency", currencyID), nil
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		s.LogError(ctx, err, "Failed to delete currency", slog.String("currency_id", currencyID.String()))
		return nil, fmt.Errorf("failed to delete currency in service: %w", err)
	}
	return deleted(fmt.Sprintf("%s->%s", existing.BaseCode, existing.TargetCode), currencyID), nil
}

func (s *currencyService) loadForUpdate(ctx context.Context, currencyID uuid.UUID) (*domain.CurrencyPair, error) {
	existing, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		err = notFoundAs(err, fmt.Sprintf("Currency with id %s does not exist.", currencyID))
		return nil, fmt.Errorf("failed to load currency: %w", err)
	}
	return existing, nil
}

// ensurePairFree fails with ErrDuplicate when a row other than selfID already holds (base, target).
func (s *currencyService) ensurePairFree(ctx context.Context, base, target domain.CurrencyCode, selfID uuid.UUID) error {
	existing, err := s.currencyRepo.FindCurrencyByCodes(ctx, base, target)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing currency pair: %w", err)
	}
	if existing != nil && existing.CurrencyID != selfID {
		return apperrors.NewConflictError(fmt.Sprintf(
			"Currency with base code: %s, and target code: %s already exists.", base, target))
	}
	return nil
}

func parsePair(baseCode, targetCode string) (domain.CurrencyCode, domain.CurrencyCode, error) {
	base, err := domain.NewCurrencyCode(baseCode)
	if err != nil {
		return "", "", err
	}
	target, err := domain.NewCurrencyCode(targetCode)
	if err != nil {
		return "", "", err
	}
	return base, target, nil
}
