package statistics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/pkg/constants"
	"github.com/ougirez/planstat/internal/pkg/logger"
)

// GeoSource is the part of the store the resolver reads from.
type GeoSource interface {
	GetGeoEntity(ctx context.Context, level domain.GeoLevel, id string) (*domain.GeoEntity, error)
}

// allTokens are demographic values that mean "no restriction".
var allTokens = map[string]struct{}{
	"all":      {},
	"tous":     {},
	"toutes":   {},
	"ensemble": {},
}

type geoKey struct {
	level domain.GeoLevel
	id    string
}

type lookup struct {
	entity *domain.GeoEntity
	err    error
}

// Resolver turns geo references into names. It memoizes lookups, failures
// included, so one instance should live for a single request or batch.
type Resolver struct {
	src           GeoSource
	nationalLabel string

	mu   sync.Mutex
	memo map[geoKey]lookup
}

func NewResolver(src GeoSource, nationalLabel string) *Resolver {
	return &Resolver{
		src:           src,
		nationalLabel: nationalLabel,
		memo:          make(map[geoKey]lookup),
	}
}

func (r *Resolver) Entity(ctx context.Context, level domain.GeoLevel, id string) (*domain.GeoEntity, error) {
	key := geoKey{level, id}

	r.mu.Lock()
	cached, ok := r.memo[key]
	r.mu.Unlock()
	if ok {
		return cached.entity, cached.err
	}

	entity, err := r.src.GetGeoEntity(ctx, level, id)
	if err != nil && ctx.Err() != nil {
		return nil, err
	}

	r.mu.Lock()
	r.memo[key] = lookup{entity, err}
	r.mu.Unlock()

	return entity, err
}

// Details loads an entity and its parents up to the top of the hierarchy. A
// missing parent ends the chain early.
func (r *Resolver) Details(ctx context.Context, level domain.GeoLevel, id string) (*domain.GeoEntityDetails, error) {
	entity, err := r.Entity(ctx, level, id)
	if err != nil {
		return nil, err
	}

	details := toDetails(entity, level)
	current := details
	for parentLevel := level.ParentLevel(); parentLevel != "" && entity.ParentID != ""; parentLevel = parentLevel.ParentLevel() {
		parent, err := r.Entity(ctx, parentLevel, entity.ParentID)
		if err != nil {
			logger.Warnf(ctx, "parent of %s %s: %s", level, id, err.Error())
			break
		}

		current.Parent = toDetails(parent, parentLevel)
		current, entity = current.Parent, parent
	}

	return details, nil
}

func toDetails(e *domain.GeoEntity, level domain.GeoLevel) *domain.GeoEntityDetails {
	return &domain.GeoEntityDetails{
		ID:    e.ID,
		Name:  e.Name,
		Code:  e.Code,
		Level: level,
	}
}

// EntityLabel names a geo reference. Lookup failures are logged and fall back to
// "<level>: (<id>)".
func (r *Resolver) EntityLabel(ctx context.Context, level domain.GeoLevel, id string) string {
	if level == domain.GeoLevelGlobal {
		return r.nationalLabel
	}
	if id == "" {
		return string(level)
	}

	entity, err := r.Entity(ctx, level, id)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			logger.Warnf(ctx, "geo entity %s %s not found", level, id)
		} else {
			logger.Errorf(ctx, "geo entity %s %s: %s", level, id, err.Error())
		}
		return fmt.Sprintf("%s: (%s)", level, id)
	}

	return entity.Name
}

// EntryLabel names a data entry series: the entity name followed by the
// demographic restrictions that actually narrow it.
func (r *Resolver) EntryLabel(ctx context.Context, entry domain.DataEntry) string {
	label := r.EntityLabel(ctx, entry.Geo.Level, entry.Geo.ReferenceID)
	if entry.Geo.Level == domain.GeoLevelGlobal {
		return label
	}

	if demographics := demographicFilters(entry); len(demographics) > 0 {
		label = fmt.Sprintf("%s (%s)", label, strings.Join(demographics, ", "))
	}
	return label
}

func demographicFilters(entry domain.DataEntry) []string {
	filters := make([]string, 0, 3)
	for _, v := range []string{entry.AgeRange, entry.Gender, entry.ResidentialArea} {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, all := allTokens[strings.ToLower(v)]; all {
			continue
		}
		filters = append(filters, v)
	}
	return filters
}
