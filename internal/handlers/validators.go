package handlers

import (
	"reflect"

	"github.com/SscSPs/fin_api/internal/utils/accounting"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// registerValidators teaches gin's validator about decimal amounts.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// Validate decimals through their string form; the struct itself has no exported fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("decimal_gt0", decimalGreaterThanZero)
}

func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return accounting.ValidateAmount(d) == nil
}
