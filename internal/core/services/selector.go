package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/shopspring/decimal"
)

// selector names one identifying argument of a lookup and whether the caller supplied it.
type selector struct {
	name    string
	present bool
}

func arg(name string, present bool) selector {
	return selector{name: name, present: present}
}

// selectOne returns the single supplied argument name.
// Zero or several supplied arguments yield apperrors.ErrInvalidArgument naming op.
func selectOne(op string, args ...selector) (string, error) {
	names := make([]string, len(args))
	chosen := ""
	count := 0
	for i, a := range args {
		names[i] = a.name
		if a.present {
			chosen = a.name
			count++
		}
	}

	switch {
	case count == 1:
		return chosen, nil
	case count == 0:
		return "", apperrors.NewInvalidArgumentError(fmt.Sprintf(
			"%s: No arguments present. You must have only one of the following arguments: %s", op, strings.Join(names, ", ")))
	default:
		return "", apperrors.NewInvalidArgumentError(fmt.Sprintf(
			"%s: Too many arguments present. You must have only one of the following arguments: %s", op, strings.Join(names, ", ")))
	}
}

// nilIfNotFound turns a repository not-found into the (nil, nil) point-lookup result.
func nilIfNotFound[T any](v *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// requiredDecimal dereferences a mandatory numeric input of a create operation.
func requiredDecimal(op, field string, d *decimal.Decimal) (decimal.Decimal, error) {
	if d == nil {
		return decimal.Zero, apperrors.NewValidationError(fmt.Sprintf("%s: %s is required", op, field))
	}
	return *d, nil
}
