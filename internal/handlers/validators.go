package handlers

import (
	"sync"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
				return domain.IsValidCurrencyCode(fl.Field().String())
			})
		}
	})
}
