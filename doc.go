// Package maritime keeps records of ships, ports and the voyages between them.
//
// # Overview
//
// Maritime serves a REST API and a server-rendered web UI over a relational
// store. Voyages reference a departure and an arrival port; a port cannot be
// deleted while any voyage still uses it. Read-side aggregations summarise
// the fleet by speed band, ports by country, voyages by month and the
// distinct countries visited in the last 365 days.
//
// # Architecture
//
//	┌─────────────────┐     ┌─────────────────┐
//	│   Web UI        │     │  Go client /    │
//	│  (templ pages)  │     │  maritime query │
//	└────────┬────────┘     └────────┬────────┘
//	         │                       │
//	┌────────▼───────────────────────▼┐
//	│  API Server (Echo REST)         │
//	└────────┬────────────────────────┘
//	         │
//	┌────────▼────────┐
//	│  Storage Layer  │
//	│ (gorm: sqlite / │
//	│    postgres)    │
//	└─────────────────┘
//
// # Usage
//
// Start the server with sample data:
//
//	maritime server --seed --config config.yaml
//
// Apply the schema or insert the sample records explicitly:
//
//	maritime migrate
//	maritime seed
//
// Read from a running server:
//
//	maritime query voyages
//	maritime query countries --format json
//
// Access the Web UI:
//
//	http://localhost:8080
//
// # Configuration
//
// Configuration can be provided via:
//   - YAML file (config.yaml, ./configs, $HOME/.maritime, /etc/maritime)
//   - Environment variables (MARITIME_ prefix, e.g. MARITIME_DATABASE_DSN)
//   - .env file
//
// Example configuration:
//
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	database:
//	  driver: postgres
//	  dsn: host=localhost user=maritime password=secret dbname=maritime sslmode=disable
//	security:
//	  allowed_origins:
//	    - http://localhost:4200
//
// # API Endpoints
//
// Records (ships, ports and voyages share the same shape):
//   - GET    /api/ships                  - List ships
//   - GET    /api/ships/:id              - Get ship by ID
//   - POST   /api/ships                  - Create ship
//   - PUT    /api/ships/:id              - Update ship (body id must match)
//   - DELETE /api/ships/:id              - Delete ship
//
// Statistics:
//   - GET  /api/countryvisits/lastyear   - Countries visited in the last year
//   - GET  /api/dashboard                - Dashboard summary
//   - GET  /api/stats                    - Rows per table
//   - POST /api/validate/:type           - Validate without saving
//
// Operations:
//   - GET /health                        - Database health
//   - GET /metrics                       - Prometheus metrics
//   - GET /docs/index.html               - Swagger UI
//
// # Development
//
// Run tests:
//
//	go test ./...
//
// Run integration tests (requires Docker for the postgres container):
//
//	go test -v -tags=integration ./internal/storage/...
//
// Build the binary:
//
//	go build -o maritime ./cmd/maritime
package maritime
