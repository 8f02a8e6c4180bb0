// Package model defines the market records and typed responses shared across
// the loader, analyzer, and HTTP layers.
package model

import "strings"

// Record is one observation of an area's market for a single year.
type Record struct {
	Year   int      `json:"year" yaml:"year"`
	Area   string   `json:"area" yaml:"area"`
	Price  float64  `json:"price" yaml:"price"`
	Demand float64  `json:"demand" yaml:"demand"`
	Size   *float64 `json:"size" yaml:"size"`
}

// MatchesArea reports whether the record belongs to the named area,
// ignoring case and surrounding whitespace.
func (r Record) MatchesArea(name string) bool {
	return strings.EqualFold(strings.TrimSpace(r.Area), strings.TrimSpace(name))
}

// SizeOrZero returns the property size, or 0 when the record has none.
func (r Record) SizeOrZero() float64 {
	if r.Size == nil {
		return 0
	}
	return *r.Size
}

// PricePoint is a (year, price) pair in a price trend.
type PricePoint struct {
	Year  int     `json:"year" yaml:"year"`
	Price float64 `json:"price" yaml:"price"`
}

// DemandPoint is a (year, demand) pair in a demand trend.
type DemandPoint struct {
	Year   int     `json:"year" yaml:"year"`
	Demand float64 `json:"demand" yaml:"demand"`
}

// ComparisonPoint is one year of an area in a two-area comparison.
type ComparisonPoint struct {
	Year   int     `json:"year" yaml:"year"`
	Price  float64 `json:"price" yaml:"price"`
	Demand float64 `json:"demand" yaml:"demand"`
}
