package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/pkg/logger"
)

var followupColumns = []string{"id", "indicator_id", "data_index", "year", "value"}

func listFollowupsQuery(filter FollowupsFilter) sq.SelectBuilder {
	query := builder().Select(followupColumns...).
		From(tableFollowups).
		Where(sq.Eq{
			"indicator_id": filter.IndicatorID,
			"data_index":   filter.DataIndexes,
		})

	if filter.StartYear != nil {
		query = query.Where(sq.GtOrEq{"year": *filter.StartYear})
	}
	if filter.EndYear != nil {
		query = query.Where(sq.LtOrEq{"year": *filter.EndYear})
	}

	return query.OrderBy("year", "data_index")
}

func (s *store) ListFollowups(ctx context.Context, filter FollowupsFilter) ([]*domain.Followup, error) {
	if len(filter.DataIndexes) == 0 {
		return nil, nil
	}
	if _, err := uuid.Parse(filter.IndicatorID); err != nil {
		return nil, nil
	}

	var selected []*domain.Followup
	if err := s.pool.Selectx(ctx, &selected, listFollowupsQuery(filter)); err != nil {
		logger.Error(ctx, err.Error())
		return nil, err
	}

	return selected, nil
}
