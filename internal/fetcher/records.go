package fetcher

import (
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/realty-insights/internal/model"
)

// Column names of a market dataset.
const (
	ColYear   = "year"
	ColArea   = "area"
	ColPrice  = "price"
	ColDemand = "demand"
	ColSize   = "size"
)

var requiredColumns = []string{ColYear, ColArea, ColPrice, ColDemand}

// ParseRecords converts tabular rows into records. The first non-blank row is
// the header; header names are matched case-insensitively and unknown
// columns are ignored. Blank rows are skipped. Any malformed required value
// fails the whole parse.
func ParseRecords(rows [][]string) ([]model.Record, error) {
	start := 0
	for start < len(rows) && isBlankRow(rows[start]) {
		start++
	}
	if start == len(rows) {
		return nil, eris.New("records: missing header row")
	}

	index := headerIndex(rows[start])
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, eris.Errorf("records: missing required column %q", col)
		}
	}

	var records []model.Record
	for i, row := range rows[start+1:] {
		if isBlankRow(row) {
			continue
		}
		line := start + i + 2 // 1-based, counting the header
		rec, err := parseRow(row, index)
		if err != nil {
			return nil, eris.Wrapf(err, "records: row %d", line)
		}
		records = append(records, rec)
	}
	return records, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := index[key]; !seen && key != "" {
			index[key] = i
		}
	}
	return index
}

func parseRow(row []string, index map[string]int) (model.Record, error) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	area := cell(ColArea)
	if area == "" {
		return model.Record{}, eris.New("empty area")
	}

	year, err := parseYear(cell(ColYear))
	if err != nil {
		return model.Record{}, err
	}
	price, err := parseNumber(ColPrice, cell(ColPrice))
	if err != nil {
		return model.Record{}, err
	}
	demand, err := parseNumber(ColDemand, cell(ColDemand))
	if err != nil {
		return model.Record{}, err
	}

	rec := model.Record{Year: year, Area: area, Price: price, Demand: demand}

	if raw := cell(ColSize); raw != "" {
		size, err := parseNumber(ColSize, raw)
		if err != nil {
			return model.Record{}, err
		}
		rec.Size = &size
	}
	return rec, nil
}

// parseYear accepts integral values, including spreadsheet floats like "2021.0".
func parseYear(raw string) (int, error) {
	if raw == "" {
		return 0, eris.New("empty year")
	}
	if y, err := strconv.Atoi(raw); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, eris.Errorf("invalid year %q", raw)
	}
	return int(f), nil
}

func parseNumber(col, raw string) (float64, error) {
	if raw == "" {
		return 0, eris.Errorf("empty %s", col)
	}
	clean := strings.NewReplacer(",", "", "₹", "", " ", "").Replace(raw)
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, eris.Errorf("invalid %s %q", col, raw)
	}
	return v, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
