package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/realty-insights/internal/store"
)

func TestLoadCommand_Loaded(t *testing.T) {
	path := writeDataFile(t, "market.json", `[{"year":2023,"area":"Baner","price":7600000,"demand":8.1}]`)

	out, err := executeCmd(t, "load", path)
	require.NoError(t, err)
	assert.Contains(t, out, "loaded 1 records across 1 areas")
}

func TestLoadCommand_Fallback(t *testing.T) {
	path := writeDataFile(t, "market.txt", "nope")

	out, err := executeCmd(t, "load", path)
	require.NoError(t, err)
	assert.Contains(t, out, "not loaded")
	assert.Contains(t, out, "unsupported file format")
}

func TestLoadCommand_SaveNeedsDatabase(t *testing.T) {
	path := writeDataFile(t, "market.csv", "year,area,price,demand\n2023,Baner,1,2\n")

	_, err := executeCmd(t, "load", "--save", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--save needs data.driver")
}

func TestLoadCommand_SaveSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "realty.db")
	t.Setenv("REALTY_DATA_DRIVER", "sqlite")
	t.Setenv("REALTY_DATA_DATABASE_URL", dbPath)
	path := writeDataFile(t, "market.csv", "year,area,price,demand,size\n2022,Baner,7000000,7,1100\n2023,Baner,7600000,8.1,1100\n")

	out, err := executeCmd(t, "load", "--save", path)
	require.NoError(t, err)
	assert.Contains(t, out, "saved 2 rows")

	st, err := store.NewSQLite(dbPath)
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck
	records, err := st.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// The saved table then serves as the dataset source.
	out, err = executeCmd(t, "query", "baner price")
	require.NoError(t, err)
	assert.Contains(t, out, "PRICE ANALYSIS: BANER")
}

func TestLoadCommand_CSVOptionsFromEnv(t *testing.T) {
	t.Setenv("REALTY_DATA_CSV_DELIMITER", ";")
	t.Setenv("REALTY_DATA_CSV_COMMENT", "#")
	path := writeDataFile(t, "market.csv", "# export\nyear;area;price;demand\n2023;Baner;7600000;8.1\n")

	out, err := executeCmd(t, "load", path)
	require.NoError(t, err)
	assert.Contains(t, out, "loaded 1 records across 1 areas")
}

func TestLoadCommand_InvalidCSVDelimiter(t *testing.T) {
	t.Setenv("REALTY_DATA_CSV_DELIMITER", ";;")
	path := writeDataFile(t, "market.csv", "year,area,price,demand\n2023,Baner,1,2\n")

	_, err := executeCmd(t, "load", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.csv.delimiter")
}

func TestLoadCommand_SaveDedupesRepeatedKeys(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "realty.db")
	t.Setenv("REALTY_DATA_DRIVER", "sqlite")
	t.Setenv("REALTY_DATA_DATABASE_URL", dbPath)
	path := writeDataFile(t, "market.csv", "year,area,price,demand\n2023,Baner,7000000,7\n2023,baner,7600000,8.1\n")

	out, err := executeCmd(t, "load", "--save", path)
	require.NoError(t, err)
	assert.Contains(t, out, "saved 1 rows")

	st, err := store.NewSQLite(dbPath)
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck
	records, err := st.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 7600000, records[0].Price, 0.001)
}
