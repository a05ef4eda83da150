package statistics

import (
	"context"
	"errors"
	"fmt"

	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/pkg/constants"
	"github.com/ougirez/planstat/internal/pkg/logger"
	"github.com/ougirez/planstat/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	NationalLabel         string
	ComparisonParallelism int
}

type Service struct {
	store store.Store
	opts  Options
}

func NewStatisticsService(store store.Store, opts Options) *Service {
	if opts.NationalLabel == "" {
		opts.NationalLabel = "National"
	}
	if opts.ComparisonParallelism < 1 {
		opts.ComparisonParallelism = 1
	}
	return &Service{store: store, opts: opts}
}

func (s *Service) newResolver() *Resolver {
	return NewResolver(s.store, s.opts.NationalLabel)
}

func (s *Service) getIndicator(ctx context.Context, id string) (*domain.Indicator, error) {
	indicator, err := s.store.GetIndicator(ctx, id)
	if errors.Is(err, constants.ErrDBNotFound) {
		return nil, fmt.Errorf("indicator %s: %w", id, constants.ErrIndicatorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store.GetIndicator: %w", err)
	}
	return indicator, nil
}

// listFacts loads the facts of the selected entries. Facts pointing past the end
// of the indicator data are orphans and are dropped.
func (s *Service) listFacts(
	ctx context.Context,
	indicator *domain.Indicator,
	indexes []int,
	start, end *domain.Year,
) ([]*domain.Followup, error) {
	if len(indexes) == 0 {
		return nil, nil
	}

	facts, err := s.store.ListFollowups(ctx, store.FollowupsFilter{
		IndicatorID: indicator.ID,
		DataIndexes: indexes,
		StartYear:   start,
		EndYear:     end,
	})
	if err != nil {
		return nil, fmt.Errorf("store.ListFollowups: %w", err)
	}

	kept := facts[:0]
	for _, f := range facts {
		if indicator.Entry(f.DataIndex) == nil {
			logger.Warnf(ctx, "orphan followup %s: indicator %s has no data entry %d", f.ID, indicator.ID, f.DataIndex)
			continue
		}
		kept = append(kept, f)
	}

	return kept, nil
}

func (s *Service) statistics(
	ctx context.Context,
	indicator *domain.Indicator,
	level domain.GeoLevel,
	ids []string,
	start, end *domain.Year,
) (domain.StatisticsResult, error) {
	indexes := SelectEntries(indicator.Data, NewEntrySelector(level, ids))
	if len(indexes) == 0 {
		return EmptyResult(), nil
	}

	facts, err := s.listFacts(ctx, indicator, indexes, start, end)
	if err != nil {
		return domain.StatisticsResult{}, err
	}

	res := Calculate(facts, indicator.Entry(indexes[0]))
	res.TrendAssessment = domain.AssessTrend(indicator.Polarity, res.TrendDirection)
	return res, nil
}

// GetFilteredStatistics computes the statistics of one indicator restricted to a
// geo level, an optional entity and an optional year window.
func (s *Service) GetFilteredStatistics(
	ctx context.Context,
	indicatorID string,
	level domain.GeoLevel,
	entityID string,
	start, end *domain.Year,
) (*domain.StatisticsResult, error) {
	indicator, err := s.getIndicator(ctx, indicatorID)
	if err != nil {
		return nil, err
	}

	res, err := s.statistics(ctx, indicator, level, []string{entityID}, start, end)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// GetFilteredChartData builds chart series for the entries of level, optionally
// restricted to entityIDs.
func (s *Service) GetFilteredChartData(
	ctx context.Context,
	indicatorID string,
	level domain.GeoLevel,
	entityIDs []string,
	start, end *domain.Year,
) (*domain.ChartData, error) {
	indicator, err := s.getIndicator(ctx, indicatorID)
	if err != nil {
		return nil, err
	}

	indexes := SelectEntries(indicator.Data, NewEntrySelector(level, entityIDs))
	facts, err := s.listFacts(ctx, indicator, indexes, start, end)
	if err != nil {
		return nil, err
	}

	chart := BuildChart(ctx, facts, indicator, YearWindow{Start: start, End: end}, s.newResolver())
	return &chart, nil
}

// GetComparisonStatistics runs one statistics computation per spec. Results keep
// the order of specs.
func (s *Service) GetComparisonStatistics(
	ctx context.Context,
	indicatorID string,
	specs []domain.ComparisonSpec,
) ([]domain.ComparisonResult, error) {
	indicator, err := s.getIndicator(ctx, indicatorID)
	if err != nil {
		return nil, err
	}

	resolver := s.newResolver()
	results := make([]domain.ComparisonResult, len(specs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.opts.ComparisonParallelism)
	for i, spec := range specs {
		i, spec := i, spec
		eg.Go(func() error {
			stats, err := s.statistics(egCtx, indicator, spec.GeoLevel, []string{spec.GeoEntityID}, spec.StartYear, spec.EndYear)
			if err != nil {
				return fmt.Errorf("comparison %d: %w", i, err)
			}

			label := spec.Label
			if label == "" {
				label = resolver.EntityLabel(egCtx, spec.GeoLevel, spec.GeoEntityID)
			}

			results[i] = domain.ComparisonResult{
				Label:       label,
				GeoLevel:    spec.GeoLevel,
				GeoEntityID: spec.GeoEntityID,
				StartYear:   spec.StartYear,
				EndYear:     spec.EndYear,
				Statistics:  stats,
			}
			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// GetGeographicEntityDetails returns the entity with its parent chain, or nil
// when there is nothing to resolve.
func (s *Service) GetGeographicEntityDetails(
	ctx context.Context,
	level domain.GeoLevel,
	entityID string,
) (*domain.GeoEntityDetails, error) {
	if !level.Known() || entityID == "" {
		return nil, nil
	}

	details, err := s.newResolver().Details(ctx, level, entityID)
	if errors.Is(err, constants.ErrDBNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolver.Details: %w", err)
	}

	return details, nil
}
