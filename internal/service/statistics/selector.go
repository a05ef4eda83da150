package statistics

import "github.com/ougirez/planstat/internal/domain"

type selectorKind int

const (
	selectGlobalOnly selectorKind = iota
	selectGlobalOrEntity
	selectLevelAll
	selectLevelIn
)

// EntrySelector decides which data entries of an indicator a request covers.
//
// A Global request keeps every Global entry and, when entity ids are pinned, also
// the entries referencing one of them whatever their level. Any other level keeps
// the entries of that level, restricted to the given ids when there are some.
type EntrySelector struct {
	kind  selectorKind
	level domain.GeoLevel
	ids   map[string]struct{}
}

func GlobalOnly() EntrySelector {
	return EntrySelector{kind: selectGlobalOnly, level: domain.GeoLevelGlobal}
}

func GlobalOrEntity(ids ...string) EntrySelector {
	return EntrySelector{kind: selectGlobalOrEntity, level: domain.GeoLevelGlobal, ids: idSet(ids)}
}

func LevelAll(level domain.GeoLevel) EntrySelector {
	return EntrySelector{kind: selectLevelAll, level: level}
}

func LevelIn(level domain.GeoLevel, ids ...string) EntrySelector {
	return EntrySelector{kind: selectLevelIn, level: level, ids: idSet(ids)}
}

// NewEntrySelector picks the selector for a request. Blank ids are ignored.
func NewEntrySelector(level domain.GeoLevel, ids []string) EntrySelector {
	pinned := len(idSet(ids)) > 0

	switch {
	case level == domain.GeoLevelGlobal && pinned:
		return GlobalOrEntity(ids...)
	case level == domain.GeoLevelGlobal:
		return GlobalOnly()
	case pinned:
		return LevelIn(level, ids...)
	default:
		return LevelAll(level)
	}
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

func (s EntrySelector) hasID(id string) bool {
	if id == "" {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

func (s EntrySelector) Matches(entry domain.DataEntry) bool {
	switch s.kind {
	case selectGlobalOnly:
		return entry.Geo.Level == domain.GeoLevelGlobal
	case selectGlobalOrEntity:
		return entry.Geo.Level == domain.GeoLevelGlobal || s.hasID(entry.Geo.ReferenceID)
	case selectLevelAll:
		return entry.Geo.Level == s.level
	case selectLevelIn:
		return entry.Geo.Level == s.level && s.hasID(entry.Geo.ReferenceID)
	default:
		return false
	}
}

// SelectEntries returns the positions in data matched by sel, in list order.
func SelectEntries(data []domain.DataEntry, sel EntrySelector) []int {
	indexes := make([]int, 0, len(data))
	for i, entry := range data {
		if sel.Matches(entry) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
