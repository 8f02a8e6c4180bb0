// Package dataset holds the market dataset behind an atomically swapped
// snapshot and provides the lookups and aggregates queries run against.
package dataset

import (
	"context"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/realty-insights/internal/model"
)

// Source yields the records of a dataset.
type Source interface {
	Name() string
	Records(ctx context.Context) ([]model.Record, error)
}

// LoadResult describes the outcome of Store.Load.
type LoadResult struct {
	Snapshot *Snapshot
	Fallback bool  // true when the seed dataset was installed instead
	Err      error // the load error behind a fallback
}

// Store owns the current dataset snapshot. Loads build a complete snapshot
// and publish it with a single pointer swap; readers holding an older
// snapshot keep a consistent view.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns an empty store. The first read seeds it.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current dataset, seeding the store if nothing was loaded.
func (s *Store) Snapshot() *Snapshot {
	if snap := s.current.Load(); snap != nil {
		return snap
	}
	seed := newSnapshot(SeedSource, SeedRecords(), true)
	if s.current.CompareAndSwap(nil, seed) {
		zap.L().Info("dataset auto-seeded", zap.String("dataset_id", seed.ID))
		return seed
	}
	return s.current.Load()
}

// Seed replaces the dataset with the built-in seed data.
func (s *Store) Seed() *Snapshot {
	snap := newSnapshot(SeedSource, SeedRecords(), true)
	s.current.Store(snap)
	zap.L().Info("seed dataset loaded",
		zap.String("dataset_id", snap.ID),
		zap.Int("records", snap.Len()),
	)
	return snap
}

// Replace installs records as the new dataset.
func (s *Store) Replace(source string, records []model.Record) *Snapshot {
	snap := newSnapshot(source, records, false)
	s.current.Store(snap)
	return snap
}

// Load reads src and installs its records. On any failure, including a
// source with no records, the seed dataset is installed and the error is
// reported in the result. The store is always left holding a valid dataset.
func (s *Store) Load(ctx context.Context, src Source) LoadResult {
	log := zap.L().With(zap.String("source", src.Name()))

	records, err := src.Records(ctx)
	if err == nil && len(records) == 0 {
		err = eris.New("dataset: source has no records")
	}
	if err != nil {
		log.Warn("dataset load failed, falling back to seed data", zap.Error(err))
		return LoadResult{Snapshot: s.Seed(), Fallback: true, Err: eris.Wrapf(err, "dataset: load %s", src.Name())}
	}

	snap := s.Replace(src.Name(), records)
	log.Info("dataset loaded",
		zap.String("dataset_id", snap.ID),
		zap.Int("records", snap.Len()),
		zap.Int("areas", len(snap.areas)),
	)
	return LoadResult{Snapshot: snap}
}

// FilterByArea returns the current dataset's records for the area.
func (s *Store) FilterByArea(name string) []model.Record {
	return s.Snapshot().FilterByArea(name)
}

// PriceTrend returns the current dataset's price trend for the area.
func (s *Store) PriceTrend(name string) []model.PricePoint {
	return s.Snapshot().PriceTrend(name)
}

// DemandTrend returns the current dataset's demand trend for the area.
func (s *Store) DemandTrend(name string) []model.DemandPoint {
	return s.Snapshot().DemandTrend(name)
}

// Compare returns the current dataset's comparison rows for two areas.
func (s *Store) Compare(a, b string) map[string][]model.ComparisonPoint {
	return s.Snapshot().Compare(a, b)
}

// AllAreas returns the current dataset's areas in first-seen order.
func (s *Store) AllAreas() []string {
	return s.Snapshot().AllAreas()
}
