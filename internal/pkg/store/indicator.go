package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/pkg/constants"
	"github.com/ougirez/planstat/internal/pkg/logger"
)

var indicatorColumns = []string{
	"id", "code", "name",
	"coalesce(unit_id::text, '') as unit_id",
	"coalesce(programme_id::text, '') as programme_id",
	"type", "polarity", "data", "created_at", "updated_at",
}

func (s *store) GetIndicator(ctx context.Context, id string) (*domain.Indicator, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, constants.ErrDBNotFound
	}

	query := builder().Select(indicatorColumns...).
		From(tableIndicators).
		Where(sq.Eq{"id": id})

	var selected domain.Indicator
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		err = wrapErr(err)
		if err != constants.ErrDBNotFound {
			logger.Errorf(ctx, "GetIndicator, id-%s: %s", id, err.Error())
		}
		return nil, err
	}

	return &selected, nil
}
