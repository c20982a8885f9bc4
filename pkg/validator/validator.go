package validator

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports fields by their form name, so messages match the page inputs
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = "le champ " + field + " est obligatoire"
			case "email":
				errors[field] = "le champ " + field + " doit être une adresse email valide"
			case "min":
				errors[field] = "le champ " + field + " doit contenir au moins " + e.Param() + " caractères"
			case "max":
				errors[field] = "le champ " + field + " doit contenir au plus " + e.Param() + " caractères"
			case "gt":
				errors[field] = "le champ " + field + " doit être supérieur à " + e.Param()
			case "gte":
				errors[field] = "le champ " + field + " doit être supérieur ou égal à " + e.Param()
			case "lte":
				errors[field] = "le champ " + field + " doit être inférieur ou égal à " + e.Param()
			default:
				errors[field] = "le champ " + field + " est invalide"
			}
		}
	}

	return errors
}

// Summary joins the formatted errors in field order, for a single flash message
func (cv *CustomValidator) Summary(err error) string {
	formatted := cv.FormatValidationErrors(err)
	if len(formatted) == 0 {
		return err.Error()
	}

	fields := make([]string, 0, len(formatted))
	for field := range formatted {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, formatted[field])
	}
	return strings.Join(messages, ", ")
}
