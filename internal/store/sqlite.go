package store

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/realty-insights/internal/model"
	"github.com/sells-group/realty-insights/internal/resilience"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db  *sql.DB
	dsn string
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db, dsn: dsn}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS real_estate_data (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	year   INTEGER NOT NULL,
	area   TEXT NOT NULL COLLATE NOCASE,
	price  REAL NOT NULL,
	demand REAL NOT NULL,
	size   REAL,
	UNIQUE (year, area)
);

CREATE INDEX IF NOT EXISTS idx_real_estate_data_area ON real_estate_data(area COLLATE NOCASE);
`

const sqliteUpsert = `
INSERT INTO real_estate_data (year, area, price, demand, size) VALUES (?, ?, ?, ?, ?)
ON CONFLICT (year, area) DO UPDATE SET
	price = excluded.price,
	demand = excluded.demand,
	size = excluded.size`

func (s *SQLiteStore) Name() string {
	return DriverSQLite + ":" + s.dsn
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Records(ctx context.Context) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT year, area, price, demand, size FROM real_estate_data ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query records")
	}
	defer rows.Close() //nolint:errcheck

	var records []model.Record
	for rows.Next() {
		var (
			r    model.Record
			size sql.NullFloat64
		)
		if err := rows.Scan(&r.Year, &r.Area, &r.Price, &r.Demand, &size); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan record")
		}
		if size.Valid {
			v := size.Float64
			r.Size = &v
		}
		records = append(records, r)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: iterate records")
}

func (s *SQLiteStore) Save(ctx context.Context, records []model.Record) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	records = dedupeRecords(records)
	retry := resilience.BusyConfig()
	retry.OnRetry = resilience.RetryLogger("sqlite", "save")
	return resilience.DoVal(ctx, retry, func(ctx context.Context) (int64, error) {
		return s.save(ctx, records)
	})
}

func (s *SQLiteStore) save(ctx context.Context, records []model.Record) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, sqliteUpsert)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: prepare upsert")
	}
	defer stmt.Close() //nolint:errcheck

	var n int64
	for _, r := range records {
		res, err := stmt.ExecContext(ctx, recordRow(r)...)
		if err != nil {
			return 0, eris.Wrapf(err, "sqlite: upsert %s %d", r.Area, r.Year)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, eris.Wrap(err, "sqlite: rows affected")
		}
		n += affected
	}

	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: commit tx")
	}
	return n, nil
}
