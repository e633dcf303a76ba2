// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	deliveriesfeature "github.com/foodfindapp/foodfind/internal/app/features/deliveries"
	donationsfeature "github.com/foodfindapp/foodfind/internal/app/features/donations"
	healthfeature "github.com/foodfindapp/foodfind/internal/app/features/health"
	"github.com/foodfindapp/foodfind/internal/app/lifecycle"
	deliverystore "github.com/foodfindapp/foodfind/internal/app/store/deliveries"
	donationstore "github.com/foodfindapp/foodfind/internal/app/store/donations"
	"github.com/foodfindapp/foodfind/internal/app/system/nutrition"
	"github.com/foodfindapp/foodfind/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and Startup have completed. The stores are built on the live database,
// the coordinator runs the record lifecycles over them, and each feature
// mounts its own subrouter.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	donations := donationstore.New(deps.MongoDatabase, logger)
	deliveries := deliverystore.New(deps.MongoDatabase, logger)
	coord := lifecycle.New(donations, deliveries, logger)
	analyzer := nutrition.New(appCfg.AnalysisURL, appCfg.AnalysisAPIKey, nil, logger)
	gate := ratelimit.New(appCfg.GateRateLimit, appCfg.GateRateWindow)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	donationsHandler := donationsfeature.NewHandler(coord, donations, analyzer, logger)
	r.Mount("/donations", donationsfeature.Routes(donationsHandler, gate))

	deliveriesHandler := deliveriesfeature.NewHandler(coord, deliveries, logger)
	r.Mount("/deliveries", deliveriesfeature.Routes(deliveriesHandler, gate))

	return r, nil
}
