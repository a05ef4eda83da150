package store

import (
	"context"

	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// FollowupsFilter narrows the fact table. A nil DataIndexes slice matches nothing:
// callers always resolve the entry positions first.
type FollowupsFilter struct {
	IndicatorID string
	DataIndexes []int
	StartYear   *domain.Year
	EndYear     *domain.Year
}

// Store is the read side of the fact store. Missing documents are reported as
// constants.ErrDBNotFound.
type Store interface {
	GetIndicator(ctx context.Context, id string) (*domain.Indicator, error)
	ListFollowups(ctx context.Context, filter FollowupsFilter) ([]*domain.Followup, error)
	GetGeoEntity(ctx context.Context, level domain.GeoLevel, id string) (*domain.GeoEntity, error)
	Ping(ctx context.Context) error
	Close()
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

func (s *store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *store) Close() {
	s.pool.Close()
}
