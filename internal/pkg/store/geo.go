package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/pkg/constants"
)

func geoEntityQuery(level domain.GeoLevel, id string) (sq.SelectBuilder, bool) {
	t, ok := geoTables[level]
	if !ok {
		return sq.SelectBuilder{}, false
	}

	parent := "''"
	if t.parentCol != "" {
		parent = fmt.Sprintf("coalesce(%s::text, '')", t.parentCol)
	}

	return builder().
		Select("id", "code", "name", parent+" as parent_id", fmt.Sprintf("'%s' as level", level)).
		From(t.table).
		Where(sq.Eq{"id": id}), true
}

func (s *store) GetGeoEntity(ctx context.Context, level domain.GeoLevel, id string) (*domain.GeoEntity, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, constants.ErrDBNotFound
	}

	query, ok := geoEntityQuery(level, id)
	if !ok {
		return nil, constants.ErrDBNotFound
	}

	var selected domain.GeoEntity
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("GetGeoEntity, level-%s, id-%s: %w", level, id, wrapErr(err))
	}

	return &selected, nil
}
