package utils

import (
	"errors"
	"log/slog"
	"net/http"

	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ParseAndValidate decodes the body into dest and validates it, writing a 400
// and returning false when either step fails.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError(err.Error()))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, appErrors.ValidationError("Invalid input data").WithError(err))
		return false
	}

	return true
}

// ParseUUIDParam reads a path value and writes a 400 when it is not a UUID.
func ParseUUIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		response.Error(w, appErrors.AddValidationError(name, "must be a valid UUID"))
		return uuid.Nil, false
	}

	return id, true
}

// RequireQuery writes a 400 when the query parameter is missing.
func RequireQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		response.Error(w, appErrors.AddValidationError(name, "query parameter is required"))
		return "", false
	}

	return value, true
}
