// Package web defines common components for a web application.
package web

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken           string    `json:"access_token,omitempty"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at,omitempty"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
	Data                  any       `json:"data,omitempty"`
	Error                 string    `json:"error,omitempty"`
}

// GetErrorMsg returns a client friendly message for the first failed
// binding validation.
func GetErrorMsg(ve validator.ValidationErrors) string {
	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " field is required"
	case "alphanum":
		return field.Field() + " field accepts only alphanumeric characters"
	case "email":
		return field.Field() + " field requires a valid email"
	case "min":
		return field.Field() + " field requires at least " + field.Param() + " characters"
	case "max":
		return field.Field() + " field accepts at most " + field.Param() + " characters"
	case "amount":
		return field.Field() + " field requires a positive decimal amount"
	default:
		return field.Field() + " field is invalid"
	}
}
