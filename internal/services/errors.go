package service

import (
	"database/sql"
	"errors"

	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	repository "github.com/ensaladazo/ensaladazo-backend/internal/repositories"
)

// notFoundOr maps sql.ErrNoRows to NotFound and anything else to
// writeError.
func notFoundOr(err error, notFoundMessage, dbMessage string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFoundError(notFoundMessage).WithError(err)
	}

	return writeError(err, dbMessage)
}

// writeError turns a value the column cannot hold into a Validation error;
// everything else is a DatabaseError carrying dbMessage.
func writeError(err error, dbMessage string) error {
	if repository.IsOutOfRange(err) {
		return appErrors.ValidationError("Value out of range").WithError(err)
	}

	return appErrors.DatabaseError(dbMessage).WithError(err)
}
