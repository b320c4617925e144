package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"esg-recommender/internal/config"
	"esg-recommender/internal/database"
	"esg-recommender/internal/esg"
	"esg-recommender/internal/explain"
	"esg-recommender/internal/middleware"
	"esg-recommender/internal/repository"
	"esg-recommender/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	router http.Handler
	db     database.Service
}

// newTestAPI wires every handler against a migrated SQLite database
func newTestAPI(t *testing.T, staticDir string) *testAPI {
	t.Helper()

	db, err := database.Open(context.Background(), config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "api.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(context.Background(), db, zap.NewNop()))

	logger := zap.NewNop()
	products := repository.NewProductRepository(db.DB(), db.Dialect())
	users := repository.NewUserRepository(db.DB(), db.Dialect())
	carts := repository.NewCartRepository(db.DB(), db.Dialect())

	scorer := esg.NewScorer(esg.DefaultWeights())
	recommender := service.NewRecommendationService(
		products, users, esg.NewFinder(scorer),
		explain.NewFallbackExplainer(explain.TemplateExplainer{}, logger),
		esg.DefaultPointsMultiplier, logger,
	)

	r := chi.NewRouter()
	r.NotFound(middleware.NotFoundHandler)
	NewSystemHandler(db, staticDir).RegisterRoutes(r)
	NewProductHandler(service.NewCatalogService(products, scorer), logger).RegisterRoutes(r)
	NewRecommendationHandler(recommender, 1, logger).RegisterRoutes(r)
	NewUserHandler(service.NewUserService(users), logger).RegisterRoutes(r)
	NewCartHandler(service.NewCartService(carts, products, users), 1, logger).RegisterRoutes(r)

	return &testAPI{router: r, db: db}
}

func (a *testAPI) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}

func errorCodeOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp middleware.ErrorResponse
	decode(t, w, &resp)
	return resp.Error.Code
}
