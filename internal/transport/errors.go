package transport

import (
	"errors"
	"net/http"
	"strconv"

	"esg-recommender/internal/middleware"
	"esg-recommender/internal/repository"
	"esg-recommender/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// respondServiceError maps service and repository errors to HTTP statuses
func respondServiceError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		middleware.RespondWithError(w, r, http.StatusNotFound, "product not found")
	case errors.Is(err, repository.ErrUserNotFound):
		middleware.RespondWithError(w, r, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidPoints):
		middleware.RespondWithError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCatalogUnavailable):
		logger.Error("Catalog unavailable", zap.Error(err), zap.String("path", r.URL.Path))
		middleware.RespondWithError(w, r, http.StatusServiceUnavailable, "product catalog unavailable")
	default:
		logger.Error("Request failed", zap.Error(err), zap.String("path", r.URL.Path))
		middleware.RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// respondDecodeError answers a body that failed to decode or validate
func respondDecodeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	logger.Debug("Request validation failed", zap.Error(err), zap.String("path", r.URL.Path))
	middleware.RespondWithValidationErrors(w, r, middleware.FormatValidationErrors(err))
}

// idParam reads a positive integer path parameter
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
