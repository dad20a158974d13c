package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/shopfront-labs/storefront/pkg/util"
)

// Validator checks bound forms and reports the first failure as a
// validation DomainError whose details map field names to messages.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a validator that names fields by their form tag.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates form.
func (v *Validator) Struct(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperrors.NewInternalError(err)
	}
	details := make(map[string]any, len(ve))
	for _, fe := range ve {
		details[fe.Field()] = fieldMessage(fe)
	}
	first := ve[0]
	return apperrors.NewValidationError(first.Field()+": "+fieldMessage(first), details)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email"
	case "numeric":
		return "must be a number"
	case "number":
		return "must be a whole number"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}
