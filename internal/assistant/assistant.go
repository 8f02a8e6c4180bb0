// Package assistant answers free-text market queries. It classifies a query
// against the current dataset, picks the matching report, and packages the
// rendered summary with chart and table data.
package assistant

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/realty-insights/internal/classify"
	"github.com/sells-group/realty-insights/internal/dataset"
	"github.com/sells-group/realty-insights/internal/fetcher"
	"github.com/sells-group/realty-insights/internal/model"
	"github.com/sells-group/realty-insights/internal/report"
)

// Service is the query assistant. It is safe for concurrent use.
type Service struct {
	store    *dataset.Store
	fileOpts fetcher.FileOptions
}

// Option configures a Service.
type Option func(*Service)

// WithFileOptions sets the reader options LoadFromFile uses.
func WithFileOptions(opts fetcher.FileOptions) Option {
	return func(s *Service) { s.fileOpts = opts }
}

// New returns a Service reading from store. A nil store gets a fresh one.
func New(store *dataset.Store, opts ...Option) *Service {
	if store == nil {
		store = dataset.NewStore()
	}
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store exposes the underlying dataset store.
func (s *Service) Store() *dataset.Store {
	return s.store
}

// Initialize resets the dataset to the seed data.
func (s *Service) Initialize() {
	s.store.Seed()
}

// Load installs records from src, falling back to seed data on failure.
func (s *Service) Load(ctx context.Context, src dataset.Source) dataset.LoadResult {
	return s.store.Load(ctx, src)
}

// LoadFromFile parses an XLSX, CSV or JSON file into the dataset. It reports
// whether the file's own records were installed; on false the seed data is
// in place. It never fails.
func (s *Service) LoadFromFile(ctx context.Context, path string) bool {
	return !s.Load(ctx, fetcher.NewFileSource(path, s.fileOpts)).Fallback
}

// ListAreas returns the dataset's areas in first-seen order.
func (s *Service) ListAreas() []string {
	return s.store.AllAreas()
}

// Recommendations ranks the current dataset's areas, best first, at most three.
func (s *Service) Recommendations() []report.RankedArea {
	return report.Recommend(s.store.Snapshot().AllMetrics())
}

// Health describes the service and its current dataset.
type Health struct {
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	DataAvailable bool      `json:"data_available"`
	DatasetID     string    `json:"dataset_id"`
	Source        string    `json:"source"`
	Seeded        bool      `json:"seeded"`
	Records       int       `json:"records"`
	Areas         int       `json:"areas"`
	LoadedAt      time.Time `json:"loaded_at"`
}

// HealthCheck reports service status.
func (s *Service) HealthCheck() Health {
	snap := s.store.Snapshot()
	return Health{
		Status:        "success",
		Message:       "Real estate API is working!",
		DataAvailable: snap.Len() > 0,
		DatasetID:     snap.ID,
		Source:        snap.Source,
		Seeded:        snap.Seeded,
		Records:       snap.Len(),
		Areas:         len(snap.AllAreas()),
		LoadedAt:      snap.LoadedAt,
	}
}

// Analyze answers one query. The whole answer is computed from a single
// dataset snapshot.
func (s *Service) Analyze(query string) model.Response {
	snap := s.store.Snapshot()
	intent := classify.Classify(query, snap.AllAreas())

	zap.L().Debug("assistant: classified query",
		zap.String("query", intent.Query),
		zap.String("mode", string(intent.Mode)),
		zap.Strings("mentioned", intent.Mentioned),
		zap.String("focus", string(intent.Focus)),
		zap.String("dataset_id", snap.ID),
	)

	switch intent.Mode {
	case classify.ModeComparison:
		return compare(snap, intent.Areas[0], intent.Areas[1])
	case classify.ModeSingle:
		return analyzeArea(snap, intent.Areas[0], intent.Focus)
	default:
		return general(snap, intent)
	}
}
