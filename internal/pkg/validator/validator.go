package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// FirstInvalid returns the name of the first struct field that fails
// validation, in declaration order, or "" when the struct is valid.
func FirstInvalid(v interface{}) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return ""
	}
	return errs[0].StructField()
}
