package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(DateLayout, fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(ClockLayout, fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
			return Color(fl.Field().String()).Valid()
		})
		validate = v
	})
	return validate
}

// Validate checks a Task, Event or Category against its full field set.
func Validate(entity interface{}) error {
	err := validatorInstance().Struct(entity)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Invalid("validation failed", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return Invalid(strings.Join(msgs, "; "), nil)
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "isodate":
		return fmt.Sprintf("%s %q must be a date like 2026-02-11", field, fe.Value())
	case "clock":
		return fmt.Sprintf("%s %q must be a time like 09:30", field, fe.Value())
	case "palette":
		return fmt.Sprintf("%s %q is not in the palette", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
