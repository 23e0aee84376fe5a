package validate

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format accepted on the wire (dd/mm/yyyy).
const DateLayout = "02/01/2006"

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("date", isDate) //nolint:errcheck
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func isDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
