// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: core handles ports, TLS,
// logging level, and the like.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// External image-analysis service. Blank URL disables the analysis
	// endpoint; everything else keeps working without it.
	AnalysisURL    string // Analysis service endpoint
	AnalysisAPIKey string // Bearer token for the analysis service

	// Per-request deadlines for store and outbound calls.
	TimeoutShort    time.Duration // Single-document reads and writes
	TimeoutMedium   time.Duration // Multi-step operations
	TimeoutAnalysis time.Duration // Outbound analysis calls

	// Rate limit for the credential-gated endpoints, per client IP.
	GateRateLimit  int           // Attempts allowed per window
	GateRateWindow time.Duration // Window duration
}
