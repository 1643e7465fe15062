package domain

import (
	"regexp"
	"strings"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

const invalidCurrencyCodeMsg = "currency code must be exactly 3 characters long and only include letters"

// CurrencyCode is a validated, upper-cased 3-letter currency code (e.g. "USD").
type CurrencyCode string

// NewCurrencyCode trims s, checks it is exactly three letters and returns the upper-cased code.
func NewCurrencyCode(s string) (CurrencyCode, error) {
	trimmed := strings.TrimSpace(s)
	if !currencyCodePattern.MatchString(trimmed) {
		return "", apperrors.NewValidationError(invalidCurrencyCodeMsg)
	}
	return CurrencyCode(strings.ToUpper(trimmed)), nil
}

// NewCurrencyCodePtr is NewCurrencyCode for optional inputs. A nil input is rejected.
func NewCurrencyCodePtr(s *string) (CurrencyCode, error) {
	if s == nil {
		return "", apperrors.NewValidationError(invalidCurrencyCodeMsg)
	}
	return NewCurrencyCode(*s)
}

// IsValidCurrencyCode reports whether s would be accepted by NewCurrencyCode.
func IsValidCurrencyCode(s string) bool {
	return currencyCodePattern.MatchString(strings.TrimSpace(s))
}

func (c CurrencyCode) String() string {
	return string(c)
}
