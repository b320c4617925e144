package transport

import (
	"net/http"
	"strconv"

	"esg-recommender/internal/middleware"
	"esg-recommender/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddToCartRequest represents the add-to-cart payload. Quantity defaults to 1.
type AddToCartRequest struct {
	UserID    int64 `json:"user_id" validate:"omitempty,gt=0"`
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  *int  `json:"quantity"`
}

// CartHandler handles HTTP requests for shopping carts
type CartHandler struct {
	carts         service.CartService
	defaultUserID int64
	logger        *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts service.CartService, defaultUserID int64, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:         carts,
		defaultUserID: defaultUserID,
		logger:        logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/", h.AddToCart)
		r.Delete("/", h.ClearCart)
	})
}

// userFromQuery reads ?user_id=, falling back to the default user
func (h *CartHandler) userFromQuery(r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return h.defaultUserID, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetCart returns the user's cart with totals
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userFromQuery(r)
	if !ok {
		middleware.RespondWithError(w, r, http.StatusBadRequest, "invalid user ID")
		return
	}

	cart, err := h.carts.Get(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, cart)
}

// AddToCart puts a product in the user's cart
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		respondDecodeError(w, r, h.logger, err)
		return
	}

	userID := req.UserID
	if userID == 0 {
		userID = h.defaultUserID
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := h.carts.Add(r.Context(), userID, req.ProductID, quantity); err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Added to cart."})
}

// ClearCart empties the user's cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userFromQuery(r)
	if !ok {
		middleware.RespondWithError(w, r, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.carts.Clear(r.Context(), userID); err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared successfully"})
}
