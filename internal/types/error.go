package types

import "fmt"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewAppError builds an AppError with the given HTTP status code.
func NewAppError(code int, message, errType string) *AppError {
	return &AppError{Code: code, Message: message, Type: errType}
}
