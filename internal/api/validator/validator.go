package validator

import (
	"github.com/Ramo-11/lunalock-texting/internal/metrics"
	"github.com/go-playground/validator/v10"
)

type Error struct {
	FailedField string
	Tag         string
	Value       interface{}
}

type RequestValidator interface {
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewValidator(metrics *metrics.Metrics) RequestValidator {
	return &XValidator{
		validator: validator.New(),
		metrics:   metrics,
	}
}

func (x *XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, Error{
				FailedField: err.Field(),
				Tag:         err.Tag(),
				Value:       err.Value(),
			})

			if x.metrics != nil {
				x.metrics.RecordValidationError(err.Field(), err.Tag())
			}
		}
	}

	return validationErrors
}
