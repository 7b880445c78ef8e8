package rest

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// fieldErrors flattens validator failures into the details shape of the
// error envelope, keyed by the JSON field name.
func fieldErrors(err error) map[string][]string {
	details := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return details
	}

	for _, fe := range verrs {
		field := jsonField(fe.Field())
		details[field] = append(details[field], fieldMessage(fe))
	}

	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Wajib diisi"
	case "oneof":
		return "Nilai tidak valid"
	default:
		return "Tidak valid"
	}
}

func jsonField(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
