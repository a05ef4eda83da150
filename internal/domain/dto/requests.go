package dto

import (
	"strings"

	"github.com/ougirez/planstat/internal/domain"
)

// YearBounds is shared by every request that narrows facts to a year window.
// Zero means the side is open.
type YearBounds struct {
	StartYear domain.Year `query:"start_year" validate:"omitempty,min=1900,max=2200"`
	EndYear   domain.Year `query:"end_year" validate:"omitempty,min=1900,max=2200"`
}

// Ordered reports whether the window is not inverted.
func (b YearBounds) Ordered() bool {
	return b.StartYear == 0 || b.EndYear == 0 || b.StartYear <= b.EndYear
}

func (b YearBounds) Start() *domain.Year {
	if b.StartYear == 0 {
		return nil
	}
	y := b.StartYear
	return &y
}

func (b YearBounds) End() *domain.Year {
	if b.EndYear == 0 {
		return nil
	}
	y := b.EndYear
	return &y
}

type StatisticsQuery struct {
	IndicatorID string          `param:"id" validate:"required"`
	GeoLevel    domain.GeoLevel `query:"geo_level" validate:"required"`
	GeoEntityID string          `query:"geo_entity_id"`
	YearBounds
}

type ChartQuery struct {
	IndicatorID  string          `param:"id" validate:"required"`
	GeoLevel     domain.GeoLevel `query:"geo_level" validate:"required"`
	GeoEntityIDs string          `query:"geo_entity_ids"`
	YearBounds
}

// EntityIDs splits the comma separated geo_entity_ids parameter, skipping blanks.
func (q ChartQuery) EntityIDs() []string {
	if q.GeoEntityIDs == "" {
		return nil
	}

	parts := strings.Split(q.GeoEntityIDs, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

type ComparisonsRequest struct {
	IndicatorID string                  `param:"id" validate:"required"`
	Comparisons []domain.ComparisonSpec `json:"comparisons" validate:"required,min=1,dive"`
}

type GeoEntityQuery struct {
	GeoLevel    domain.GeoLevel `param:"level" validate:"required"`
	GeoEntityID string          `param:"id"`
}
