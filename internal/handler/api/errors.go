package api

import (
	"net/http"

	"movie-reservation/internal/handler/httperr"
	"movie-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase error marks onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidAudience):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Audience count cannot be negative", nil)
	case errs.Is(err, errs.ErrScreeningNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Screening not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
