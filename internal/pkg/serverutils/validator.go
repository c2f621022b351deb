package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	MsgInvalidBody      = "Invalid request body"
	MsgRequiredFields   = "Title and content are required"
	MsgTitleTooLongTmpl = "Title must be at most %s characters"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateRequest validates a DTO and converts failures into a 400 *fiber.Error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			return fiber.NewError(fiber.StatusBadRequest, validationMessage(errs))
		}
		return fiber.NewError(fiber.StatusBadRequest, MsgInvalidBody)
	}
	return nil
}

func validationMessage(errs validator.ValidationErrors) string {
	for _, fe := range errs {
		switch fe.Tag() {
		case "required", "notblank":
			return MsgRequiredFields
		case "max":
			return fmt.Sprintf(MsgTitleTooLongTmpl, fe.Param())
		}
	}
	return MsgInvalidBody
}
