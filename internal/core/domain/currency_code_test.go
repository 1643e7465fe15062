package domain_test

import (
	"testing"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrencyCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.CurrencyCode
		wantErr bool
	}{
		{name: "upper case", input: "USD", want: "USD"},
		{name: "lower case", input: "eur", want: "EUR"},
		{name: "mixed case with whitespace", input: "  gBp \t", want: "GBP"},
		{name: "too short", input: "US", wantErr: true},
		{name: "too long", input: "USDT", wantErr: true},
		{name: "digits", input: "U5D", wantErr: true},
		{name: "symbols", input: "$$$", wantErr: true},
		{name: "inner space", input: "U D", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewCurrencyCode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Empty(t, got)
				assert.False(t, domain.IsValidCurrencyCode(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, domain.IsValidCurrencyCode(tt.input))
		})
	}
}

func TestNewCurrencyCodePtr(t *testing.T) {
	_, err := domain.NewCurrencyCodePtr(nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	code := " cad"
	got, err := domain.NewCurrencyCodePtr(&code)
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyCode("CAD"), got)
}
