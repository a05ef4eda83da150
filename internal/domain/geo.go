package domain

type GeoLevel string

const (
	GeoLevelGlobal      GeoLevel = "Global"
	GeoLevelProvince    GeoLevel = "Province"
	GeoLevelDepartement GeoLevel = "Departement"
	GeoLevelCommune     GeoLevel = "Commune"
)

// ParentLevel returns the level directly above l, or "" for top levels and
// unknown tags.
func (l GeoLevel) ParentLevel() GeoLevel {
	switch l {
	case GeoLevelCommune:
		return GeoLevelDepartement
	case GeoLevelDepartement:
		return GeoLevelProvince
	default:
		return ""
	}
}

// Known reports whether l is a level backed by a reference collection.
func (l GeoLevel) Known() bool {
	switch l {
	case GeoLevelProvince, GeoLevelDepartement, GeoLevelCommune:
		return true
	default:
		return false
	}
}

type GeoEntity struct {
	ID       string   `json:"id" db:"id"`
	Code     string   `json:"code" db:"code"`
	Name     string   `json:"name" db:"name"`
	Level    GeoLevel `json:"level" db:"level"`
	ParentID string   `json:"parentId,omitempty" db:"parent_id"`
}

type GeoEntityDetails struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Code   string            `json:"code"`
	Level  GeoLevel          `json:"level"`
	Parent *GeoEntityDetails `json:"parent,omitempty"`
}
