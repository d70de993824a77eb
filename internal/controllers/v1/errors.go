package v1

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sahana-eden/budget/internal/models"
)

type httpError struct {
	Error      string `json:"error" example:"the association already exists: kit_item 4"`
	ExistingID *uint  `json:"existingId,omitempty" example:"4"` // ID of the existing line for duplicate associations
}

// status returns the appropriate status for an error of the engine
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrStorageFailure), errors.Is(err, models.ErrInvariantViolation):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateCode), errors.Is(err, models.ErrDuplicateAssociation), errors.Is(err, models.ErrReferenceInUse):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// abort writes the error response for err.
func abort(c *gin.Context, err error) {
	e := httpError{Error: err.Error()}

	var duplicate *models.DuplicateError
	if errors.As(err, &duplicate) {
		e.ExistingID = &duplicate.ExistingID
	}

	code := status(err)
	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.JSON(code, e)
}
