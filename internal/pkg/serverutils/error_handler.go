package serverutils

import (
	"errors"

	"notes-app-be/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const MsgInternalError = "Internal server error"

// ErrorHandler renders every error returned from a handler as {"error": msg}.
// *fiber.Error keeps its code and message; anything else is logged and
// reported as a generic 500 so store details never reach the client.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := MsgInternalError

		var fiberErr *fiber.Error
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.As(err, &validationErrs):
			code = fiber.StatusBadRequest
			message = validationMessage(validationErrs)
		default:
			log.Error("HTTP", "unhandled error", map[string]interface{}{
				"error":  err,
				"method": ctx.Method(),
				"path":   ctx.Path(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(message))
	}
}
