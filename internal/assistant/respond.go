package assistant

import (
	"github.com/sells-group/realty-insights/internal/classify"
	"github.com/sells-group/realty-insights/internal/dataset"
	"github.com/sells-group/realty-insights/internal/model"
	"github.com/sells-group/realty-insights/internal/report"
)

func compare(snap *dataset.Snapshot, a, b string) model.Response {
	ma, okA := snap.Metrics(a)
	mb, okB := snap.Metrics(b)
	switch {
	case !okA:
		return notFound(snap, a)
	case !okB:
		return notFound(snap, b)
	}

	return model.Response{
		Summary:        report.NewComparisonReport(ma, mb).Render(),
		ComparisonData: snap.Compare(a, b),
		Areas:          []string{a, b},
		Type:           model.ResponseTypeComparison,
	}
}

func analyzeArea(snap *dataset.Snapshot, area string, focus classify.Focus) model.Response {
	m, ok := snap.Metrics(area)
	if !ok {
		return notFound(snap, area)
	}

	trend := snap.PriceTrend(area)
	chart := &model.ChartData{
		Labels: make([]int, 0, len(trend)),
		Prices: make([]float64, 0, len(trend)),
	}
	for _, p := range trend {
		chart.Labels = append(chart.Labels, p.Year)
		chart.Prices = append(chart.Prices, p.Price)
	}

	return model.Response{
		Summary:   areaReport(m, focus).Render(),
		ChartData: chart,
		TableData: snap.FilterByArea(area),
		Area:      area,
		Type:      model.ResponseTypeAnalysis,
	}
}

func areaReport(m dataset.AreaMetrics, focus classify.Focus) report.Report {
	switch focus {
	case classify.FocusPrice:
		return report.NewPriceReport(m)
	case classify.FocusDemand:
		return report.NewDemandReport(m)
	case classify.FocusGrowth:
		return report.NewGrowthReport(m)
	case classify.FocusInvestment:
		return report.NewInvestmentReport(m)
	default:
		return report.NewComprehensiveReport(m)
	}
}

func general(snap *dataset.Snapshot, intent classify.Intent) model.Response {
	areas := snap.AllAreas()

	var r report.Report
	switch intent.General {
	case classify.GeneralList:
		r = report.AreaListReport{Areas: areas}
	case classify.GeneralHelp:
		r = report.HelpReport{}
	case classify.GeneralRecommendation:
		r = report.NewRecommendationReport(snap.AllMetrics())
	default:
		r = report.FallbackReport{Query: intent.Query, Areas: areas}
	}
	return model.Response{Summary: r.Render(), Type: model.ResponseTypeInfo}
}

func notFound(snap *dataset.Snapshot, area string) model.Response {
	return model.Response{
		Summary: report.NotFoundReport{Area: area, Areas: snap.AllAreas()}.Render(),
		Type:    model.ResponseTypeError,
	}
}
