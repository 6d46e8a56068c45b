package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/esimov/m3/color"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the package rules
// registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("argb", func(fl validator.FieldLevel) bool {
			_, err := color.ParseARGB(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}
