package transport

import (
	"net/http"

	"esg-recommender/internal/domain"
	"esg-recommender/internal/middleware"
	"esg-recommender/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	Category    string  `json:"category" validate:"required,max=100"`
	Packaging   string  `json:"packaging" validate:"max=50"`
	IsOrganic   bool    `json:"is_organic"`
	CarbonKg    float64 `json:"carbon_kg" validate:"gte=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// Values assumed for fields left out of a score request
const (
	defaultScorePrice    = 1.0
	defaultScoreCarbonKg = 0.0
)

// ScoreRequest represents an ad-hoc product to score without storing it.
// An omitted price counts as 1 and an omitted carbon footprint as 0.
type ScoreRequest struct {
	Name      string   `json:"name" validate:"max=255"`
	Category  string   `json:"category" validate:"max=100"`
	Packaging string   `json:"packaging" validate:"max=50"`
	IsOrganic bool     `json:"is_organic"`
	CarbonKg  *float64 `json:"carbon_kg" validate:"omitempty,gte=0"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
}

// product applies the defaults for omitted fields
func (req ScoreRequest) product() domain.Product {
	carbon, price := defaultScoreCarbonKg, defaultScorePrice
	if req.CarbonKg != nil {
		carbon = *req.CarbonKg
	}
	if req.Price != nil {
		price = *req.Price
	}

	return domain.Product{
		Name:      req.Name,
		Category:  req.Category,
		Packaging: domain.Packaging(req.Packaging),
		IsOrganic: req.IsOrganic,
		CarbonKg:  carbon,
		Price:     price,
	}
}

// ProductHandler handles HTTP requests for catalog operations
type ProductHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalog service.CatalogService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/{id}", h.GetProduct)
	})
	r.Post("/api/score", h.ScoreProduct)
}

// ListProducts returns the catalog, optionally filtered by ?category=
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct returns one product together with its sustainability insights
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		middleware.RespondWithError(w, r, http.StatusBadRequest, "invalid product ID")
		return
	}

	details, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, details)
}

// CreateProduct adds a product to the catalog
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		respondDecodeError(w, r, h.logger, err)
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Packaging:   domain.Packaging(req.Packaging),
		IsOrganic:   req.IsOrganic,
		CarbonKg:    req.CarbonKg,
		Price:       req.Price,
	}

	if err := h.catalog.CreateProduct(r.Context(), product); err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Product created", zap.Int64("product_id", product.ID), zap.String("category", product.Category))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// ScoreProduct scores a product payload without persisting it
func (h *ProductHandler) ScoreProduct(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		respondDecodeError(w, r, h.logger, err)
		return
	}

	result := h.catalog.Score(req.product())

	middleware.RespondWithJSON(w, http.StatusOK, result)
}
