package model

// ResponseType tags the kind of answer returned to a query.
type ResponseType string

const (
	ResponseTypeAnalysis   ResponseType = "analysis"
	ResponseTypeComparison ResponseType = "comparison"
	ResponseTypeInfo       ResponseType = "info"
	ResponseTypeError      ResponseType = "error"
)

// ChartData holds parallel year/price arrays for a single-area chart.
type ChartData struct {
	Labels []int     `json:"labels" yaml:"labels"`
	Prices []float64 `json:"prices" yaml:"prices"`
}

// Response is the payload returned by Analyze.
type Response struct {
	Summary        string                       `json:"summary" yaml:"summary"`
	ChartData      *ChartData                   `json:"chart_data,omitempty" yaml:"chart_data,omitempty"`
	TableData      []Record                     `json:"table_data,omitempty" yaml:"table_data,omitempty"`
	ComparisonData map[string][]ComparisonPoint `json:"comparison_data,omitempty" yaml:"comparison_data,omitempty"`
	Area           string                       `json:"area,omitempty" yaml:"area,omitempty"`
	Areas          []string                     `json:"areas,omitempty" yaml:"areas,omitempty"`
	Type           ResponseType                 `json:"type" yaml:"type"`
}
