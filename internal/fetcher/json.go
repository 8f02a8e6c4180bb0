package fetcher

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/realty-insights/internal/model"
)

// jsonRecord keeps required fields as pointers so absent keys are detectable.
type jsonRecord struct {
	Year   *int     `json:"year"`
	Area   string   `json:"area"`
	Price  *float64 `json:"price"`
	Demand *float64 `json:"demand"`
	Size   *float64 `json:"size"`
}

// ReadJSONRecords decodes a JSON array of records. Like the tabular readers,
// it rejects records missing year, area, price, or demand.
func ReadJSONRecords(r io.Reader) ([]model.Record, error) {
	var raw []jsonRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, eris.Wrap(err, "json: decode records")
	}

	records := make([]model.Record, 0, len(raw))
	for i, jr := range raw {
		rec, err := jr.record()
		if err != nil {
			return nil, eris.Wrapf(err, "json: record %d", i)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (jr jsonRecord) record() (model.Record, error) {
	area := strings.TrimSpace(jr.Area)
	switch {
	case area == "":
		return model.Record{}, eris.New("empty area")
	case jr.Year == nil:
		return model.Record{}, eris.New("empty year")
	case jr.Price == nil:
		return model.Record{}, eris.Errorf("empty %s", ColPrice)
	case jr.Demand == nil:
		return model.Record{}, eris.Errorf("empty %s", ColDemand)
	}
	return model.Record{
		Year:   *jr.Year,
		Area:   area,
		Price:  *jr.Price,
		Demand: *jr.Demand,
		Size:   jr.Size,
	}, nil
}
