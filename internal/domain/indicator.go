package domain

import "time"

type Year = int

type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

// GeoScope places a data entry in the territorial hierarchy. Global entries never
// carry a ReferenceID.
type GeoScope struct {
	Level       GeoLevel `json:"level" db:"level"`
	ReferenceID string   `json:"referenceId,omitempty" db:"reference_id"`
}

type DataEntry struct {
	Geo             GeoScope `json:"geo"`
	AgeRange        string   `json:"ageRange,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	ResidentialArea string   `json:"residentialArea,omitempty"`
	SocialCategory  string   `json:"socialCategory,omitempty"`
	ReferenceYear   Year     `json:"referenceYear,omitempty"`
	ReferenceValue  float64  `json:"referenceValue,omitempty"`
	TargetYear      Year     `json:"targetYear,omitempty"`
	TargetValue     float64  `json:"targetValue,omitempty"`
}

// Indicator owns its data entries. A followup points at an entry by its position
// in Data.
type Indicator struct {
	ID          string      `json:"id" db:"id"`
	Code        string      `json:"code" db:"code"`
	Name        string      `json:"name" db:"name"`
	UnitID      string      `json:"unitId,omitempty" db:"unit_id"`
	ProgrammeID string      `json:"programmeId,omitempty" db:"programme_id"`
	Type        string      `json:"type,omitempty" db:"type"`
	Polarity    Polarity    `json:"polarity" db:"polarity"`
	Data        []DataEntry `json:"data" db:"data"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// Entry returns the data entry at index, or nil when the index is out of range.
func (i *Indicator) Entry(index int) *DataEntry {
	if index < 0 || index >= len(i.Data) {
		return nil
	}
	return &i.Data[index]
}

// Followup is one yearly observation for a data entry of an indicator.
type Followup struct {
	ID          string  `json:"id" db:"id"`
	IndicatorID string  `json:"indicatorId" db:"indicator_id"`
	DataIndex   int     `json:"dataIndex" db:"data_index"`
	Year        Year    `json:"year" db:"year"`
	Value       float64 `json:"value" db:"value"`
}
