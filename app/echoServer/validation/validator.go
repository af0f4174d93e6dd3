package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	V *validator.Validate
}

// New registers the prefixed-identifier tags used by request DTOs
// (CAR-n, RES-n, INV-n) on top of the stock validators.
func New() *Validator {
	v := validator.New()
	registerPattern(v, "car_id", `^CAR-\d+$`)
	registerPattern(v, "res_id", `^RES-\d+$`)
	registerPattern(v, "inv_id", `^INV-\d+$`)
	return &Validator{V: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.V.Struct(i)
}

func registerPattern(v *validator.Validate, tag, pattern string) {
	re := regexp.MustCompile(pattern)
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
}
