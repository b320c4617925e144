package transport

import (
	"net/http"

	"esg-recommender/internal/middleware"
	"esg-recommender/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UpdatePointsRequest represents the points update payload
type UpdatePointsRequest struct {
	Points *int `json:"points" validate:"required,gte=0"`
}

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	users  service.UserService
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/users/{name}", h.GetUser)
	r.Put("/api/points/{user_id}", h.UpdatePoints)
}

// GetUser looks a user up by name
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, user)
}

// UpdatePoints overwrites a user's point balance
func (h *UserHandler) UpdatePoints(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "user_id")
	if !ok {
		middleware.RespondWithError(w, r, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req UpdatePointsRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		respondDecodeError(w, r, h.logger, err)
		return
	}

	user, err := h.users.SetPoints(r.Context(), userID, *req.Points)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Points updated", zap.Int64("user_id", userID), zap.Int("points", user.Points))
	middleware.RespondWithJSON(w, http.StatusOK, user)
}
