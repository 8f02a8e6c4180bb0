package dataset

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/realty-insights/internal/model"
)

// Snapshot is one immutable loaded dataset. All lookups are case-insensitive
// on area name and return empty results, never errors, for unknown areas.
type Snapshot struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	Seeded   bool      `json:"seeded"`
	LoadedAt time.Time `json:"loaded_at"`

	records []model.Record
	areas   []string
}

func newSnapshot(source string, records []model.Record, seeded bool) *Snapshot {
	owned := make([]model.Record, len(records))
	copy(owned, records)

	seen := make(map[string]bool)
	var areas []string
	for _, r := range owned {
		key := strings.ToLower(r.Area)
		if !seen[key] {
			seen[key] = true
			areas = append(areas, r.Area)
		}
	}

	return &Snapshot{
		ID:       uuid.New().String(),
		Source:   source,
		Seeded:   seeded,
		LoadedAt: time.Now().UTC(),
		records:  owned,
		areas:    areas,
	}
}

// Len returns the number of records.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Records returns a copy of all records in stored order.
func (s *Snapshot) Records() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// AllAreas returns the distinct area names in first-seen order.
func (s *Snapshot) AllAreas() []string {
	out := make([]string, len(s.areas))
	copy(out, s.areas)
	return out
}

// FilterByArea returns the records of the named area in stored order.
func (s *Snapshot) FilterByArea(name string) []model.Record {
	var out []model.Record
	for _, r := range s.records {
		if r.MatchesArea(name) {
			out = append(out, r)
		}
	}
	return out
}

// PriceTrend returns the area's (year, price) pairs ordered by year.
func (s *Snapshot) PriceTrend(name string) []model.PricePoint {
	sorted := sortByYear(s.FilterByArea(name))
	points := make([]model.PricePoint, 0, len(sorted))
	for _, r := range sorted {
		points = append(points, model.PricePoint{Year: r.Year, Price: r.Price})
	}
	return points
}

// DemandTrend returns the area's (year, demand) pairs ordered by year.
func (s *Snapshot) DemandTrend(name string) []model.DemandPoint {
	sorted := sortByYear(s.FilterByArea(name))
	points := make([]model.DemandPoint, 0, len(sorted))
	for _, r := range sorted {
		points = append(points, model.DemandPoint{Year: r.Year, Demand: r.Demand})
	}
	return points
}

// Compare returns both areas' year-ordered rows keyed by title-cased name.
func (s *Snapshot) Compare(a, b string) map[string][]model.ComparisonPoint {
	out := make(map[string][]model.ComparisonPoint, 2)
	for _, name := range []string{a, b} {
		sorted := sortByYear(s.FilterByArea(name))
		points := make([]model.ComparisonPoint, 0, len(sorted))
		for _, r := range sorted {
			points = append(points, model.ComparisonPoint{Year: r.Year, Price: r.Price, Demand: r.Demand})
		}
		out[TitleCase(name)] = points
	}
	return out
}

// Metrics aggregates the named area. The returned Area is the name as stored
// in the dataset. ok is false when the area has no records.
func (s *Snapshot) Metrics(name string) (AreaMetrics, bool) {
	records := s.FilterByArea(name)
	if len(records) == 0 {
		return AreaMetrics{Area: name}, false
	}
	return ComputeMetrics(records[0].Area, records)
}

// AllMetrics aggregates every area in first-seen order.
func (s *Snapshot) AllMetrics() []AreaMetrics {
	out := make([]AreaMetrics, 0, len(s.areas))
	for _, area := range s.areas {
		if m, ok := s.Metrics(area); ok {
			out = append(out, m)
		}
	}
	return out
}

// TitleCase title-cases an area name for display.
func TitleCase(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}
