package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/realty-insights/internal/assistant"
	"github.com/sells-group/realty-insights/internal/config"
	"github.com/sells-group/realty-insights/internal/fetcher"
	"github.com/sells-group/realty-insights/internal/store"
)

// assistantEnv holds the service and any database it was loaded from.
type assistantEnv struct {
	Service *assistant.Service
	Store   store.Store // nil for the file driver
}

// Close releases the database connection, if any.
func (e *assistantEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initAssistant validates config for mode and builds a Service with its
// initial dataset. With a SQL driver the dataset is read from the database;
// a --data file (or data.path) then takes precedence. Load failures fall
// back to seed data and are only logged. Callers should defer env.Close().
func initAssistant(ctx context.Context, mode string) (*assistantEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	env := &assistantEnv{Service: assistant.New(nil, assistant.WithFileOptions(fileOptions()))}

	if cfg.Data.Driver != config.DriverFile {
		st, err := openStore(ctx)
		if err != nil {
			return nil, eris.Wrap(err, "open store")
		}
		env.Store = st
		if res := env.Service.Load(ctx, st); res.Fallback {
			zap.L().Warn("database dataset unavailable, using seed data", zap.Error(res.Err))
		}
	}

	if path := resolveDataPath(); path != "" {
		if !env.Service.LoadFromFile(ctx, path) {
			zap.L().Warn("data file not loaded, using seed data", zap.String("path", path))
		}
	}

	return env, nil
}

func resolveDataPath() string {
	if dataPath != "" {
		return dataPath
	}
	return cfg.Data.Path
}

// fileOptions maps data.sheet and data.csv onto the file readers.
func fileOptions() fetcher.FileOptions {
	return fetcher.FileOptions{
		Sheet: cfg.Data.Sheet,
		CSV: fetcher.CSVOptions{
			Delimiter:  cfg.Data.CSV.DelimiterRune(),
			Comment:    cfg.Data.CSV.CommentRune(),
			LazyQuotes: cfg.Data.CSV.LazyQuotes,
		},
	}
}

// openStore connects to the configured SQL driver with data.pool sizing.
func openStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, cfg.Data.Driver, cfg.Data.DatabaseURL, &store.PoolConfig{
		MaxConns: cfg.Data.Pool.MaxConns,
		MinConns: cfg.Data.Pool.MinConns,
	})
}
