package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/realty-insights/internal/db"
	"github.com/sells-group/realty-insights/internal/model"
	"github.com/sells-group/realty-insights/internal/resilience"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32
	MinConns int32
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(4)
	minConns := int32(1)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	retry := resilience.ConnectConfig()
	retry.OnRetry = resilience.RetryLogger("postgres", "ping")
	if err := resilience.Do(ctx, retry, pool.Ping); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS real_estate_data (
	id     BIGSERIAL PRIMARY KEY,
	year   INTEGER NOT NULL,
	area   TEXT NOT NULL,
	price  DOUBLE PRECISION NOT NULL,
	demand DOUBLE PRECISION NOT NULL,
	size   DOUBLE PRECISION
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_real_estate_data_year_area ON real_estate_data (year, lower(area));
CREATE INDEX IF NOT EXISTS idx_real_estate_data_area ON real_estate_data (lower(area));
`

func (s *PostgresStore) Name() string {
	return DriverPostgres
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) Records(ctx context.Context) ([]model.Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT year, area, price, demand, size FROM real_estate_data ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query records")
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.Year, &r.Area, &r.Price, &r.Demand, &r.Size); err != nil {
			return nil, eris.Wrap(err, "postgres: scan record")
		}
		records = append(records, r)
	}
	return records, eris.Wrap(rows.Err(), "postgres: iterate records")
}

func (s *PostgresStore) Save(ctx context.Context, records []model.Record) (int64, error) {
	records = dedupeRecords(records)
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, recordRow(r))
	}
	n, err := db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        Table,
		Columns:      Columns,
		ConflictKeys: []string{"year", "area"},
		// matches uq_real_estate_data_year_area
		ConflictTarget: `"year", lower("area")`,
	}, rows)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: save records")
	}
	return n, nil
}
