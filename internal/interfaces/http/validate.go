package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"github.com/fotosvit/fotosvit-api/internal/application/dto"
)

// NewValidator створює валідатор запитів із кастомним тегом uamobile
// (український мобільний номер через libphonenumber).
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("uamobile", func(fl validator.FieldLevel) bool {
		num, err := phonenumbers.Parse(fl.Field().String(), "UA")
		if err != nil {
			return false
		}
		if !phonenumbers.IsValidNumberForRegion(num, "UA") {
			return false
		}
		t := phonenumbers.GetNumberType(num)
		return t == phonenumbers.MOBILE || t == phonenumbers.FIXED_LINE_OR_MOBILE
	})
	return v
}

// fieldErrors конвертує помилки валідатора у список помилок полів для
// відповіді клієнту.
func fieldErrors(err error) []dto.FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.FieldError{{Field: "", Message: "некоректні дані"}}
	}
	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, dto.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "поле обов'язкове"
	case "email":
		return "некоректний email"
	case "uamobile":
		return "некоректний мобільний номер"
	case "min":
		return "значення закоротке або замале"
	case "max":
		return "значення задовге або завелике"
	default:
		return "некоректне значення"
	}
}
