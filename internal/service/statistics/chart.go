package statistics

import (
	"context"
	"sort"
	"strconv"

	"github.com/ougirez/planstat/internal/domain"
	"github.com/samber/lo"
)

// palette colors are assigned by series position so a query always renders the
// same way.
var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// seriesFill is the alpha suffix applied to the palette for area fills.
const seriesFill = "33"

// YearWindow is the optional year window of a chart request. When both ends are
// set every year in between is placed on the axis.
type YearWindow struct {
	Start *domain.Year
	End   *domain.Year
}

func (w YearWindow) years() []domain.Year {
	if w.Start == nil || w.End == nil || *w.Start > *w.End {
		return nil
	}
	return lo.RangeFrom(*w.Start, *w.End-*w.Start+1)
}

// BuildChart turns facts into one series per data entry aligned on the union of
// observed years. Facts whose entry is missing from the indicator are ignored.
func BuildChart(
	ctx context.Context,
	facts []*domain.Followup,
	indicator *domain.Indicator,
	window YearWindow,
	resolver *Resolver,
) domain.ChartData {
	facts = lo.Filter(facts, func(f *domain.Followup, _ int) bool {
		return indicator.Entry(f.DataIndex) != nil
	})

	chart := domain.ChartData{
		Labels:   []string{},
		Datasets: []domain.Dataset{},
	}
	if len(facts) == 0 {
		return chart
	}

	axis := lo.Uniq(append(
		lo.Map(facts, func(f *domain.Followup, _ int) domain.Year { return f.Year }),
		window.years()...,
	))
	sort.Ints(axis)

	chart.Labels = lo.Map(axis, func(y domain.Year, _ int) string { return strconv.Itoa(y) })

	groups := lo.GroupBy(facts, func(f *domain.Followup) int { return f.DataIndex })
	indexes := lo.Keys(groups)
	sort.Ints(indexes)

	for i, index := range indexes {
		byYear := make(map[domain.Year]float64, len(groups[index]))
		for _, f := range groups[index] {
			byYear[f.Year] = f.Value
		}

		data := make([]*float64, len(axis))
		for j, year := range axis {
			if v, ok := byYear[year]; ok {
				data[j] = &v
			}
		}

		color := palette[i%len(palette)]
		chart.Datasets = append(chart.Datasets, domain.Dataset{
			Label:           resolver.EntryLabel(ctx, *indicator.Entry(index)),
			Data:            data,
			BorderColor:     color,
			BackgroundColor: color + seriesFill,
		})
	}

	return chart
}
