package serverutils

import (
	"notes-app-be/internal/dto"
)

// ErrorBody is the shape of every non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Error: message}
}

func MessageResponse(message string) dto.MessageResponse {
	return dto.MessageResponse{Message: message}
}
