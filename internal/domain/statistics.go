package domain

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

type TrendAssessment string

const (
	AssessmentImproving TrendAssessment = "improving"
	AssessmentWorsening TrendAssessment = "worsening"
	AssessmentStable    TrendAssessment = "stable"
)

// AssessTrend judges a direction against the indicator polarity. Anything that is
// not explicitly negative is treated as positive.
func AssessTrend(polarity Polarity, direction TrendDirection) TrendAssessment {
	if direction != TrendUp && direction != TrendDown {
		return AssessmentStable
	}
	good := direction == TrendUp
	if polarity == PolarityNegative {
		good = !good
	}
	if good {
		return AssessmentImproving
	}
	return AssessmentWorsening
}

type StatisticsResult struct {
	TotalDataPoints           int             `json:"totalDataPoints"`
	LatestValue               float64         `json:"latestValue"`
	YearRange                 *string         `json:"yearRange"`
	TrendDirection            TrendDirection  `json:"trendDirection"`
	TrendAssessment           TrendAssessment `json:"trendAssessment"`
	YearlyGrowthRate          float64         `json:"yearlyGrowthRate"`
	ChangeFromPrevious        float64         `json:"changeFromPrevious"`
	PercentChangeFromPrevious float64         `json:"percentChangeFromPrevious"`
	ReferenceValue            float64         `json:"referenceValue"`
	TargetValue               float64         `json:"targetValue"`
	TargetYear                Year            `json:"targetYear"`
	ReferenceYear             Year            `json:"referenceYear"`
	GapToTarget               float64         `json:"gapToTarget"`
	PercentGapToTarget        float64         `json:"percentGapToTarget"`
}

type ComparisonSpec struct {
	GeoLevel    GeoLevel `json:"geoLevel" validate:"required"`
	GeoEntityID string   `json:"geoEntityId,omitempty"`
	StartYear   *Year    `json:"startYear,omitempty" validate:"omitempty,min=1900,max=2200"`
	EndYear     *Year    `json:"endYear,omitempty" validate:"omitempty,min=1900,max=2200"`
	Label       string   `json:"label,omitempty"`
}

type ComparisonResult struct {
	Label       string           `json:"label"`
	GeoLevel    GeoLevel         `json:"geoLevel"`
	GeoEntityID string           `json:"geoEntityId,omitempty"`
	StartYear   *Year            `json:"startYear,omitempty"`
	EndYear     *Year            `json:"endYear,omitempty"`
	Statistics  StatisticsResult `json:"statistics"`
}

// Dataset is one chart series; a nil value marks a year with no observation.
type Dataset struct {
	Label           string     `json:"label"`
	Data            []*float64 `json:"data"`
	BorderColor     string     `json:"borderColor"`
	BackgroundColor string     `json:"backgroundColor"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
