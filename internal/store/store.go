// Package store keeps real-estate records in the real_estate_data SQL table.
// SQLite and Postgres backends implement the same Store interface, and both
// can serve as a dataset source.
package store

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/realty-insights/internal/model"
)

// Table is the records table shared by both backends.
const Table = "real_estate_data"

// Columns lists the record columns in scan and insert order.
var Columns = []string{"year", "area", "price", "demand", "size"}

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store defines persistence for market records.
type Store interface {
	// Name labels the backend as a dataset source.
	Name() string
	// Records returns every stored record in insertion order.
	Records(ctx context.Context) ([]model.Record, error)
	// Save upserts records keyed by year and case-insensitive area and
	// returns rows written. Repeated keys in one batch keep the last record.
	Save(ctx context.Context, records []model.Record) (int64, error)

	Migrate(ctx context.Context) error
	Close() error
}

// Open connects to the named driver and migrates the schema. poolCfg tunes
// the Postgres pool and may be nil.
func Open(ctx context.Context, driver, dsn string, poolCfg *PoolConfig) (Store, error) {
	var (
		s   Store
		err error
	)
	switch driver {
	case DriverSQLite:
		s, err = NewSQLite(dsn)
	case DriverPostgres:
		s, err = NewPostgres(ctx, dsn, poolCfg)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Migrate(ctx); err != nil {
		s.Close() //nolint:errcheck
		return nil, err
	}
	return s, nil
}

func recordRow(r model.Record) []any {
	return []any{r.Year, r.Area, r.Price, r.Demand, r.Size}
}

type recordKey struct {
	year int
	area string
}

// dedupeRecords keeps one record per year and case-folded area. The last
// occurrence wins and takes the position of the first.
func dedupeRecords(records []model.Record) []model.Record {
	seen := make(map[recordKey]int, len(records))
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		k := recordKey{year: r.Year, area: strings.ToLower(strings.TrimSpace(r.Area))}
		if i, ok := seen[k]; ok {
			out[i] = r
			continue
		}
		seen[k] = len(out)
		out = append(out, r)
	}
	return out
}
