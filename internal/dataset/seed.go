package dataset

import "github.com/sells-group/realty-insights/internal/model"

// SeedSource is the Source label of the built-in dataset.
const SeedSource = "seed"

type seedArea struct {
	name    string
	prices  [4]float64
	demands [4]float64
	size    float64
}

var seedAreas = []seedArea{
	{"Wakad", [4]float64{5500000, 6000000, 6800000, 7500000}, [4]float64{7.5, 8.0, 8.5, 9.0}, 1200},
	{"Aundh", [4]float64{8000000, 8500000, 9200000, 10000000}, [4]float64{8.0, 8.2, 8.5, 8.8}, 1500},
	{"Akurdi", [4]float64{4500000, 5000000, 5800000, 6500000}, [4]float64{7.0, 7.3, 7.8, 8.2}, 1000},
}

const seedFirstYear = 2020

// SeedRecords returns the deterministic fallback dataset: three areas over
// 2020-2023, area by area.
func SeedRecords() []model.Record {
	records := make([]model.Record, 0, len(seedAreas)*4)
	for _, a := range seedAreas {
		for i := range a.prices {
			size := a.size
			records = append(records, model.Record{
				Year:   seedFirstYear + i,
				Area:   a.name,
				Price:  a.prices[i],
				Demand: a.demands[i],
				Size:   &size,
			})
		}
	}
	return records
}
