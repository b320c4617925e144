package server

import (
	"fmt"
	"net/http"
	"time"

	"esg-recommender/internal/config"
	"esg-recommender/internal/database"
	"esg-recommender/internal/esg"
	"esg-recommender/internal/explain"
	custommiddleware "esg-recommender/internal/middleware"
	"esg-recommender/internal/repository"
	"esg-recommender/internal/service"
	"esg-recommender/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config    *config.Config
	logger    *zap.Logger
	db        database.Service
	redis     *redis.Client
	explainer explain.Explainer
}

// NewServer wires repositories, services and handlers onto a chi router.
// redisClient may be nil, in which case caching and rate limiting are off.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db database.Service,
	redisClient *redis.Client,
	explainer explain.Explainer,
) *Server {
	router := chi.NewRouter()

	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.IsDevelopment()))

	if redisClient != nil {
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "ratelimit",
			ExemptPaths:       []string{"/health", "/api/health"},
		}, logger))
	}

	router.NotFound(custommiddleware.NotFoundHandler)
	router.MethodNotAllowed(custommiddleware.MethodNotAllowedHandler)

	// Initialize repositories
	var productRepo repository.ProductRepository = repository.NewProductRepository(db.DB(), db.Dialect())
	if redisClient != nil {
		productRepo = repository.NewCachedProductRepository(productRepo, redisClient, cfg.Redis.CacheTTL, logger)
	}
	userRepo := repository.NewUserRepository(db.DB(), db.Dialect())
	cartRepo := repository.NewCartRepository(db.DB(), db.Dialect())

	// Initialize services
	scorer := esg.NewScorer(cfg.Scoring.Weights)
	catalogService := service.NewCatalogService(productRepo, scorer)
	recommendationService := service.NewRecommendationService(
		productRepo,
		userRepo,
		esg.NewFinder(scorer),
		explainer,
		cfg.Scoring.PointsMultiplier,
		logger,
	)
	userService := service.NewUserService(userRepo)
	cartService := service.NewCartService(cartRepo, productRepo, userRepo)

	// Register routes
	transport.NewProductHandler(catalogService, logger).RegisterRoutes(router)
	transport.NewRecommendationHandler(recommendationService, cfg.Scoring.DefaultUserID, logger).RegisterRoutes(router)
	transport.NewUserHandler(userService, logger).RegisterRoutes(router)
	transport.NewCartHandler(cartService, cfg.Scoring.DefaultUserID, logger).RegisterRoutes(router)
	transport.NewSystemHandler(db, cfg.Server.StaticDir).RegisterRoutes(router)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:    cfg,
		logger:    logger,
		db:        db,
		redis:     redisClient,
		explainer: explainer,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if closer, ok := s.explainer.(interface{ Close() }); ok {
		closer.Close()
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
