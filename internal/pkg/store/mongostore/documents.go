package mongostore

import (
	"time"

	"github.com/ougirez/planstat/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type geoLocationDoc struct {
	Level       string             `bson:"type"`
	ReferenceID primitive.ObjectID `bson:"referenceId,omitempty"`
}

type dataEntryDoc struct {
	GeoLocation     geoLocationDoc `bson:"geoLocation"`
	AgeRange        string         `bson:"ageRange,omitempty"`
	Gender          string         `bson:"gender,omitempty"`
	ResidentialArea string         `bson:"residentialArea,omitempty"`
	SocialCategory  string         `bson:"socialCategory,omitempty"`
	ReferenceYear   int            `bson:"referenceYear,omitempty"`
	ReferenceValue  float64        `bson:"referenceValue,omitempty"`
	TargetYear      int            `bson:"targetYear,omitempty"`
	TargetValue     float64        `bson:"targetValue,omitempty"`
}

type indicatorDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Code      string             `bson:"code"`
	Name      string             `bson:"name"`
	Unit      primitive.ObjectID `bson:"unitOfMeasure,omitempty"`
	Programme primitive.ObjectID `bson:"programme,omitempty"`
	Type      string             `bson:"type,omitempty"`
	Polarity  string             `bson:"polarityDirection,omitempty"`
	Data      []dataEntryDoc     `bson:"data"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

type followupDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Indicator primitive.ObjectID `bson:"indicator"`
	DataIndex int                `bson:"dataIndex"`
	Year      int                `bson:"year"`
	Value     float64            `bson:"value"`
}

type geoEntityDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Code        string             `bson:"code"`
	Name        string             `bson:"name"`
	Province    primitive.ObjectID `bson:"province,omitempty"`
	Departement primitive.ObjectID `bson:"departement,omitempty"`
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

func (d *indicatorDoc) toDomain() *domain.Indicator {
	ind := &domain.Indicator{
		ID:          d.ID.Hex(),
		Code:        d.Code,
		Name:        d.Name,
		UnitID:      hexOrEmpty(d.Unit),
		ProgrammeID: hexOrEmpty(d.Programme),
		Type:        d.Type,
		Polarity:    domain.Polarity(d.Polarity),
		Data:        make([]domain.DataEntry, 0, len(d.Data)),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}

	for _, e := range d.Data {
		ind.Data = append(ind.Data, domain.DataEntry{
			Geo: domain.GeoScope{
				Level:       domain.GeoLevel(e.GeoLocation.Level),
				ReferenceID: hexOrEmpty(e.GeoLocation.ReferenceID),
			},
			AgeRange:        e.AgeRange,
			Gender:          e.Gender,
			ResidentialArea: e.ResidentialArea,
			SocialCategory:  e.SocialCategory,
			ReferenceYear:   e.ReferenceYear,
			ReferenceValue:  e.ReferenceValue,
			TargetYear:      e.TargetYear,
			TargetValue:     e.TargetValue,
		})
	}

	return ind
}

func (d *followupDoc) toDomain() *domain.Followup {
	return &domain.Followup{
		ID:          d.ID.Hex(),
		IndicatorID: d.Indicator.Hex(),
		DataIndex:   d.DataIndex,
		Year:        d.Year,
		Value:       d.Value,
	}
}

func (d *geoEntityDoc) toDomain(level domain.GeoLevel) *domain.GeoEntity {
	parent := d.Departement
	if level == domain.GeoLevelDepartement {
		parent = d.Province
	}

	return &domain.GeoEntity{
		ID:       d.ID.Hex(),
		Code:     d.Code,
		Name:     d.Name,
		Level:    level,
		ParentID: hexOrEmpty(parent),
	}
}
