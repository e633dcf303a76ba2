// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for FoodFind.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, analysis_url, etc.
//   - Environment variables: FOODFIND_MONGO_URI, FOODFIND_ANALYSIS_URL, etc.
//   - Command-line flags: --mongo_uri, --analysis_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "foodfind", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	// Image analysis service
	{Name: "analysis_url", Default: "", Desc: "Image-analysis service endpoint (blank disables analysis)"},
	{Name: "analysis_api_key", Default: "", Desc: "API key for the image-analysis service"},

	// Request deadlines
	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-document store operations"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for multi-step operations"},
	{Name: "timeout_analysis", Default: "30s", Desc: "Deadline for outbound analysis calls"},

	// Credential-gate rate limiting
	{Name: "gate_rate_limit", Default: 30, Desc: "Gated-endpoint attempts allowed per window, per client IP"},
	{Name: "gate_rate_window", Default: "1m", Desc: "Gated-endpoint rate-limit window"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// Merging precedence is flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FOODFIND", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AnalysisURL:    appValues.String("analysis_url"),
		AnalysisAPIKey: appValues.String("analysis_api_key"),

		TimeoutShort:    appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium:   appValues.Duration("timeout_medium", 10*time.Second),
		TimeoutAnalysis: appValues.Duration("timeout_analysis", 30*time.Second),

		GateRateLimit:  appValues.Int("gate_rate_limit"),
		GateRateWindow: appValues.Duration("gate_rate_window", time.Minute),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// FoodFind validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.AnalysisURL == "" && appCfg.AnalysisAPIKey != "" {
		return fmt.Errorf("analysis_api_key is set but analysis_url is blank")
	}
	if appCfg.GateRateLimit <= 0 {
		return fmt.Errorf("gate_rate_limit must be positive, got %d", appCfg.GateRateLimit)
	}
	return nil
}
