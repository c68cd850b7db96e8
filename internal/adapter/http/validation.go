package http

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domain "travel-services-backend/internal/domain/travelservice"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report json field names so the form can place messages next to inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// membership in the fixed service type catalog
	_ = v.RegisterValidation("servicetype", func(fl validator.FieldLevel) bool {
		return domain.ValidServiceType(domain.ServiceType(strings.TrimSpace(fl.Field().String())))
	})
	// membership in the fixed status catalog
	_ = v.RegisterValidation("svcstatus", func(fl validator.FieldLevel) bool {
		return domain.ValidStatus(domain.Status(strings.TrimSpace(fl.Field().String())))
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})
	// month number: 0 means not supplied, otherwise 1..12
	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n == 0 || (n >= 1 && n <= 12)
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required", "required_if":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "servicetype":
			out = append(out, FieldError{Field: field, Message: "must be one of the service type options"})
		case "svcstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of the status options"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a yyyy-mm-dd date"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "month":
			out = append(out, FieldError{Field: field, Message: "must be a month number between 1 and 12"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must have at least " + e.Param() + " items"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
