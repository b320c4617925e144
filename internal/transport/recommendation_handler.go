package transport

import (
	"net/http"

	"esg-recommender/internal/domain"
	"esg-recommender/internal/middleware"
	"esg-recommender/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgAlternativeFound   = "Greener alternative found"
	msgNoAlternativeFound = "No greener alternative found"
)

// RecommendationRequest represents the recommendation request payload.
// UserID falls back to the configured default user when omitted.
type RecommendationRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	UserID    int64 `json:"user_id" validate:"omitempty,gt=0"`
}

// RecommendationResponse is returned for both outcomes; Alternative is null
// when the product is already the greenest in its category.
type RecommendationResponse struct {
	Original      domain.Product  `json:"original"`
	Alternative   *domain.Product `json:"alternative"`
	Reason        string          `json:"reason"`
	CarbonSaved   float64         `json:"carbon_saved"`
	PointsAwarded int             `json:"points_awarded"`
	Message       string          `json:"message"`
}

// RecommendationHandler handles HTTP requests for greener alternatives
type RecommendationHandler struct {
	recommender   service.RecommendationService
	defaultUserID int64
	logger        *zap.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(recommender service.RecommendationService, defaultUserID int64, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommender:   recommender,
		defaultUserID: defaultUserID,
		logger:        logger,
	}
}

// RegisterRoutes registers the recommendation route
func (h *RecommendationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/recommendation", h.Recommend)
}

// Recommend finds a greener alternative and credits the user's points
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		respondDecodeError(w, r, h.logger, err)
		return
	}

	userID := req.UserID
	if userID == 0 {
		userID = h.defaultUserID
	}

	rec, err := h.recommender.Recommend(r.Context(), req.ProductID, userID)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	resp := RecommendationResponse{
		Original:      rec.Original,
		Alternative:   rec.Alternative,
		Reason:        rec.Reason,
		CarbonSaved:   rec.CarbonSavedKg,
		PointsAwarded: rec.PointsAwarded,
		Message:       msgNoAlternativeFound,
	}
	if rec.Found() {
		resp.Message = msgAlternativeFound
	}

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}
