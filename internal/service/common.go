package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "event-voting-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Score bounds, inclusive
const (
	MinScore = 0
	MaxScore = 10
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Actor identifies who triggered an operation, for the audit trail
type Actor struct {
	Name      string
	IPAddress string
}

// SystemActor is used for operations not triggered by a request
var SystemActor = Actor{Name: "system"}

// NewValidator returns a validator that reports fields by their JSON name
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("text", func(fl validator.FieldLevel) bool {
		return storableText(fl.Field().String())
	})
	return v
}

// storableText reports whether s can be stored in a Postgres text column
func storableText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

func checkText(field, value string) error {
	if storableText(value) {
		return nil
	}
	return apperrors.NewValidationError(field, field+" must be valid UTF-8 text")
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// validationError converts validator output into a ValidationError naming the first failing field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, field+" is required")
	case "max":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	case "min":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
	case "text":
		return apperrors.NewValidationError(field, field+" must be valid UTF-8 text")
	default:
		return apperrors.NewValidationError(field, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// maskDeviceHash keeps only a prefix of the hash for audit records
func maskDeviceHash(hash string) string {
	runes := []rune(hash)
	keep := 8
	if len(runes) <= keep {
		keep = len(runes) / 2
	}
	return string(runes[:keep]) + "..."
}
