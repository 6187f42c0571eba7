// Package config manages application configuration for the job board API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single source
// of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: token signing settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	DB_HOST              - SurrealDB host (default: localhost)
//	DB_PORT              - SurrealDB port (default: 8000)
//	DB_NAMESPACE         - Database namespace (default: jobboard)
//	DB_DATABASE          - Database name (default: main)
//	DB_USER              - Database username
//	DB_PASSWORD          - Database password
//	JWT_SECRET           - Token signing secret (required, no default)
//	JWT_EXPIRATION_MINS  - Token lifetime in minutes (default: 30)
//	CORS_ALLOWED_ORIGINS - Comma-separated list of allowed origins
//
// # Validation
//
// Validate reports every problem at once rather than failing on the first:
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
