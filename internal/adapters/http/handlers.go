package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/songchart/api/internal/domain/entities"
)

// Response messages
const (
	MsgSongNotFound      = "Song not found"
	MsgSongAlreadyExists = "Song with this ID already exists"
	MsgValidationFailed  = "Validation failed"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError describes one rejected request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError builds a 422 carrying per-field detail
func NewValidationError(fields ...FieldError) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, ErrorResponse{
		Detail: MsgValidationFailed,
		Errors: fields,
	})
}

// ValidationErrorFrom converts validator output into a 422
func ValidationErrorFrom(errs validator.ValidationErrors) *echo.HTTPError {
	fields := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return NewValidationError(fields...)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

// bindError turns a body binding failure into a 422. Type mismatches name the
// offending field.
func bindError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
		return he
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return NewValidationError(FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewValidationError(FieldError{
			Field:   "body",
			Message: fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset),
		})
	}

	return NewValidationError(FieldError{Field: "body", Message: "invalid request body"})
}

// parseID reads the integer path parameter
func parseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, NewValidationError(FieldError{Field: "id", Message: "value is not a valid integer"})
	}
	return id, nil
}

// domainError maps store sentinels onto HTTP status codes. Anything
// unrecognised is passed through for the server error handler to turn into 500.
func domainError(err error) error {
	switch {
	case errors.Is(err, entities.ErrSongNotFound):
		return echo.NewHTTPError(http.StatusNotFound, MsgSongNotFound)
	case errors.Is(err, entities.ErrSongAlreadyExists):
		return echo.NewHTTPError(http.StatusBadRequest, MsgSongAlreadyExists)
	case errors.Is(err, entities.ErrInvalidSong):
		return NewValidationError(FieldError{Field: "body", Message: err.Error()})
	default:
		return err
	}
}
