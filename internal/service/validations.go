package service

import (
	"errors"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("field_key", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Must start with a letter
				if i == 0 && !unicode.IsLetter(char) {
					return false
				}
				// Letters, digits, underscore or dash
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' && char != '-' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("iana_tz", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" || strings.EqualFold(value, "local") {
				return false
			}
			_, err := time.LoadLocation(value)
			return err == nil
		})
	})
}

func validateRequest(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrInvalidRequest
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
