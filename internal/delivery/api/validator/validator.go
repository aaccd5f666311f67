// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	domainerrors "academy/internal/domain/errors"
	"academy/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,80}$`)

// ValidationError carries one translated message per invalid field.
type ValidationError struct {
	Fields map[string]string
	first  string
}

func (e *ValidationError) Error() string {
	return e.first
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New builds a validator that reports fields by their json names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	translator, _ := ut.New(en.New(), en.New()).GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, translator)

	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterTranslation("username", translator,
		func(t ut.Translator) error {
			return t.Add("username", "{0} must be 3-80 characters of letters, digits, '_' or '-'", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("username", fe.Field())

			return msg
		},
	)

	return &CustomValidator{validate: validate, translator: translator}
}

// Validate checks i and returns a *ValidationError for invalid input.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		msg := fe.Translate(cv.translator)
		if verr.first == "" {
			verr.first = msg
		}
		verr.Fields[fieldPath(fe)] = msg
	}

	return verr
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}

// AsAppError converts a validation failure into the VALIDATION_ERROR response.
func AsAppError(err error) (*domainerrors.BaseError, map[string]string, bool) {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return nil, nil, false
	}

	return domainerrors.ErrValidationFailed.WithMessage(verr.Error()), verr.Fields, true
}
