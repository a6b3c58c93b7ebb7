package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/gocipher/internal/cipher"
)

// register adds the custom validations with their human-readable messages
// and reports fields by their flag label.
func register(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	if err := validator.RegisterValidationAndTranslation(
		"cipher",
		validateCipher,
		"{0} must be one of "+strings.Join(cipher.Names(), ", "),
	); err != nil {
		return fmt.Errorf("registering cipher validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	otherField := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() != reflect.String || otherField.Kind() != reflect.String {
		return true
	}

	return field.String() == "" || otherField.String() == ""
}

// validateCipher checks that the field names a supported cipher.
func validateCipher(fl validator.FieldLevel) bool {
	_, err := cipher.ParseType(fl.Field().String())

	return err == nil
}
