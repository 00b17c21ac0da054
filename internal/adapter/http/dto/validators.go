package dto

import (
	"math"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// maxFractionDrift tolerates float64 representation error on values like
// 19.90 while still rejecting genuine sub-cent amounts.
const maxFractionDrift = 1e-6

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("money", validateMoney)
	}
}

// validateMoney accepts amounts with at most two fraction digits.
func validateMoney(fl validator.FieldLevel) bool {
	cents := fl.Field().Float() * 100
	return math.Abs(cents-math.Round(cents)) < maxFractionDrift
}
