package services

import (
	"context"

	"consultsite/internal/config"
	apperrors "consultsite/pkg/errors"
)

const diagnosticCollectionLimit = 10

// StoreProbe is the read-only view of the document store used for diagnostics
type StoreProbe interface {
	Connected() bool
	Name() string
	Collections(ctx context.Context, limit int) ([]string, error)
}

// Message is a liveness response
type Message struct {
	Message string `json:"message"`
}

// Diagnostics is a best-effort snapshot of store connectivity. Its wording is
// informational only.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// HealthService implements liveness and diagnostics
type HealthService struct {
	store StoreProbe
	db    config.DatabaseConfig
}

// NewHealthService creates a new health service
func NewHealthService(store StoreProbe, db config.DatabaseConfig) *HealthService {
	return &HealthService{store: store, db: db}
}

// Root implements GET /
func (s *HealthService) Root() Message {
	return Message{Message: "Consulting website backend is running"}
}

// Hello implements GET /api/hello
func (s *HealthService) Hello() Message {
	return Message{Message: "Hello from the backend API!"}
}

// Diagnose probes the store. It never fails; problems are reported in the snapshot.
func (s *HealthService) Diagnose(ctx context.Context) Diagnostics {
	d := Diagnostics{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
		DatabaseURL:      setOrNot(s.db.URL),
		DatabaseName:     setOrNot(s.db.Name),
	}

	if s.store == nil || !s.store.Connected() {
		return d
	}

	d.Database = "available"
	d.ConnectionStatus = "Connected"

	names, err := s.store.Collections(ctx, diagnosticCollectionLimit)
	if err != nil {
		d.Database = "connected but error: " + apperrors.Truncate(err.Error(), 50)
		return d
	}
	if names != nil {
		d.Collections = names
	}
	d.Database = "connected & working"
	return d
}

func setOrNot(v string) string {
	if v != "" {
		return "set"
	}
	return "not set"
}
