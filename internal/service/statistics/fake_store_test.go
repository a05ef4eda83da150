package statistics

import (
	"context"
	"sort"
	"sync"

	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/pkg/constants"
	"github.com/ougirez/planstat/internal/pkg/store"
)

type fakeStore struct {
	mu         sync.Mutex
	indicators map[string]*domain.Indicator
	followups  []*domain.Followup
	geo        map[geoKey]*domain.GeoEntity
	geoErr     error
	geoCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		indicators: make(map[string]*domain.Indicator),
		geo:        make(map[geoKey]*domain.GeoEntity),
	}
}

func (f *fakeStore) addFacts(indicatorID string, dataIndex int, yearValues ...float64) {
	for i := 0; i+1 < len(yearValues); i += 2 {
		f.followups = append(f.followups, &domain.Followup{
			IndicatorID: indicatorID,
			DataIndex:   dataIndex,
			Year:        int(yearValues[i]),
			Value:       yearValues[i+1],
		})
	}
}

func (f *fakeStore) addGeo(e *domain.GeoEntity) {
	f.geo[geoKey{e.Level, e.ID}] = e
}

func (f *fakeStore) GetIndicator(_ context.Context, id string) (*domain.Indicator, error) {
	ind, ok := f.indicators[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return ind, nil
}

func (f *fakeStore) ListFollowups(_ context.Context, filter store.FollowupsFilter) ([]*domain.Followup, error) {
	wanted := make(map[int]bool, len(filter.DataIndexes))
	for _, i := range filter.DataIndexes {
		wanted[i] = true
	}

	var out []*domain.Followup
	for _, fu := range f.followups {
		if fu.IndicatorID != filter.IndicatorID || !wanted[fu.DataIndex] {
			continue
		}
		if filter.StartYear != nil && fu.Year < *filter.StartYear {
			continue
		}
		if filter.EndYear != nil && fu.Year > *filter.EndYear {
			continue
		}
		cp := *fu
		out = append(out, &cp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].DataIndex < out[j].DataIndex
	})
	return out, nil
}

func (f *fakeStore) GetGeoEntity(_ context.Context, level domain.GeoLevel, id string) (*domain.GeoEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.geoCalls++
	if f.geoErr != nil {
		return nil, f.geoErr
	}
	e, ok := f.geo[geoKey{level, id}]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return e, nil
}

func (f *fakeStore) Ping(context.Context) error { return nil }
func (f *fakeStore) Close()                     {}

func year(y int) *int { return &y }
