package statistics

import (
	"context"
	"reflect"
	"testing"

	"github.com/ougirez/planstat/internal/domain"
)

func values(data []*float64) []interface{} {
	out := make([]interface{}, len(data))
	for i, v := range data {
		if v == nil {
			out[i] = nil
			continue
		}
		out[i] = *v
	}
	return out
}

func chartIndicator() *domain.Indicator {
	return &domain.Indicator{
		ID: "ind",
		Data: []domain.DataEntry{
			{Geo: domain.GeoScope{Level: domain.GeoLevelProvince, ReferenceID: "P1"}, Gender: "Femme", AgeRange: "Tous"},
			{Geo: domain.GeoScope{Level: domain.GeoLevelProvince, ReferenceID: "P2"}},
		},
	}
}

func chartFacts(pairs ...[3]float64) []*domain.Followup {
	out := make([]*domain.Followup, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, &domain.Followup{DataIndex: int(p[0]), Year: int(p[1]), Value: p[2]})
	}
	return out
}

func TestBuildChartAxisUnion(t *testing.T) {
	fs := newFakeStore()
	fs.addGeo(&domain.GeoEntity{ID: "P1", Level: domain.GeoLevelProvince, Name: "Kinshasa"})
	fs.addGeo(&domain.GeoEntity{ID: "P2", Level: domain.GeoLevelProvince, Name: "Kongo Central"})

	facts := chartFacts(
		[3]float64{0, 2019, 1}, [3]float64{0, 2020, 2},
		[3]float64{1, 2020, 3}, [3]float64{1, 2021, 4},
	)

	got := BuildChart(context.Background(), facts, chartIndicator(), YearWindow{}, NewResolver(fs, "National"))

	if want := []string{"2019", "2020", "2021"}; !reflect.DeepEqual(got.Labels, want) {
		t.Fatalf("Labels = %v, want %v", got.Labels, want)
	}
	if len(got.Datasets) != 2 {
		t.Fatalf("len(Datasets) = %d, want 2", len(got.Datasets))
	}

	wantSeries := []struct {
		label string
		data  []interface{}
		color string
	}{
		{"Kinshasa (Femme)", []interface{}{1.0, 2.0, nil}, palette[0]},
		{"Kongo Central", []interface{}{nil, 3.0, 4.0}, palette[1]},
	}
	for i, w := range wantSeries {
		ds := got.Datasets[i]
		if ds.Label != w.label {
			t.Errorf("Datasets[%d].Label = %q, want %q", i, ds.Label, w.label)
		}
		if !reflect.DeepEqual(values(ds.Data), w.data) {
			t.Errorf("Datasets[%d].Data = %v, want %v", i, values(ds.Data), w.data)
		}
		if ds.BorderColor != w.color || ds.BackgroundColor != w.color+seriesFill {
			t.Errorf("Datasets[%d] colors = %s/%s", i, ds.BorderColor, ds.BackgroundColor)
		}
	}
}

func TestBuildChartWindowWidensAxis(t *testing.T) {
	fs := newFakeStore()
	facts := chartFacts([3]float64{1, 2020, 30})

	got := BuildChart(context.Background(), facts, chartIndicator(), YearWindow{Start: year(2019), End: year(2021)}, NewResolver(fs, "National"))

	if want := []string{"2019", "2020", "2021"}; !reflect.DeepEqual(got.Labels, want) {
		t.Fatalf("Labels = %v, want %v", got.Labels, want)
	}
	if want := []interface{}{nil, 30.0, nil}; !reflect.DeepEqual(values(got.Datasets[0].Data), want) {
		t.Errorf("Data = %v, want %v", values(got.Datasets[0].Data), want)
	}
}

func TestBuildChartMissingEntityFallsBack(t *testing.T) {
	fs := newFakeStore()
	facts := chartFacts([3]float64{1, 2020, 30})

	got := BuildChart(context.Background(), facts, chartIndicator(), YearWindow{}, NewResolver(fs, "National"))

	if got.Datasets[0].Label != "Province: (P2)" {
		t.Errorf("Label = %q, want fallback", got.Datasets[0].Label)
	}
}

func TestBuildChartEmpty(t *testing.T) {
	got := BuildChart(context.Background(), nil, chartIndicator(), YearWindow{Start: year(2019), End: year(2021)}, NewResolver(newFakeStore(), "National"))

	if got.Labels == nil || got.Datasets == nil {
		t.Fatalf("empty chart must carry empty slices, got %+v", got)
	}
	if len(got.Labels) != 0 || len(got.Datasets) != 0 {
		t.Errorf("got %+v, want empty chart", got)
	}
}

func TestBuildChartIgnoresOrphans(t *testing.T) {
	fs := newFakeStore()
	facts := chartFacts([3]float64{7, 2020, 1})

	got := BuildChart(context.Background(), facts, chartIndicator(), YearWindow{}, NewResolver(fs, "National"))
	if len(got.Datasets) != 0 {
		t.Errorf("orphan fact produced %d datasets", len(got.Datasets))
	}
}

func TestBuildChartPaletteWraps(t *testing.T) {
	ind := &domain.Indicator{}
	var fs []*domain.Followup
	for i := 0; i < len(palette)+2; i++ {
		ind.Data = append(ind.Data, domain.DataEntry{Geo: domain.GeoScope{Level: domain.GeoLevelGlobal}})
		fs = append(fs, &domain.Followup{DataIndex: i, Year: 2020, Value: float64(i)})
	}

	got := BuildChart(context.Background(), fs, ind, YearWindow{}, NewResolver(newFakeStore(), "National"))

	if got.Datasets[len(palette)].BorderColor != palette[0] || got.Datasets[len(palette)+1].BorderColor != palette[1] {
		t.Errorf("palette did not wrap: %s, %s", got.Datasets[len(palette)].BorderColor, got.Datasets[len(palette)+1].BorderColor)
	}
	if got.Datasets[0].Label != "National" {
		t.Errorf("Label = %q, want National", got.Datasets[0].Label)
	}
}
