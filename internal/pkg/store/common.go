package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/pkg/constants"
)

const (
	tableIndicators   = "indicators"
	tableFollowups    = "indicator_followups"
	tableProvinces    = "provinces"
	tableDepartements = "departements"
	tableCommunes     = "communes"
)

// geoTables maps a level to its reference table and the column pointing at the parent.
var geoTables = map[domain.GeoLevel]struct {
	table     string
	parentCol string
}{
	domain.GeoLevelProvince:    {tableProvinces, ""},
	domain.GeoLevelDepartement: {tableDepartements, "province_id"},
	domain.GeoLevelCommune:     {tableCommunes, "departement_id"},
}

func wrapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return constants.ErrDBNotFound
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
