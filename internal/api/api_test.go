package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/pkg/config"
	"github.com/ougirez/planstat/internal/pkg/constants"
	"github.com/ougirez/planstat/internal/pkg/store"
)

const indicatorID = "ind-1"

type memStore struct {
	pingErr error
}

func (m *memStore) GetIndicator(_ context.Context, id string) (*domain.Indicator, error) {
	if id != indicatorID {
		return nil, constants.ErrDBNotFound
	}
	return &domain.Indicator{
		ID:       indicatorID,
		Polarity: domain.PolarityPositive,
		Data: []domain.DataEntry{
			{Geo: domain.GeoScope{Level: domain.GeoLevelGlobal}},
			{Geo: domain.GeoScope{Level: domain.GeoLevelProvince, ReferenceID: "P1"}},
		},
	}, nil
}

func (m *memStore) ListFollowups(_ context.Context, filter store.FollowupsFilter) ([]*domain.Followup, error) {
	all := []*domain.Followup{
		{DataIndex: 0, Year: 2020, Value: 50},
		{DataIndex: 1, Year: 2020, Value: 30},
		{DataIndex: 0, Year: 2021, Value: 55},
	}

	var out []*domain.Followup
	for _, f := range all {
		for _, i := range filter.DataIndexes {
			if f.DataIndex == i {
				out = append(out, f)
			}
		}
	}
	return out, nil
}

func (m *memStore) GetGeoEntity(_ context.Context, level domain.GeoLevel, id string) (*domain.GeoEntity, error) {
	if level == domain.GeoLevelProvince && id == "P1" {
		return &domain.GeoEntity{ID: "P1", Code: "KN", Name: "Kinshasa", Level: level}, nil
	}
	return nil, constants.ErrDBNotFound
}

func (m *memStore) Ping(context.Context) error { return m.pingErr }
func (m *memStore) Close()                     {}

func newTestAPI(t *testing.T, s store.Store) http.Handler {
	t.Helper()

	svc, err := NewAPIService(s, &config.Config{
		CorsOrigins:           []string{"http://localhost:3000"},
		NationalLabel:         "National",
		ComparisonParallelism: 2,
	})
	if err != nil {
		t.Fatalf("NewAPIService: %v", err)
	}
	return svc.Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStatisticsEndpoint(t *testing.T) {
	h := newTestAPI(t, &memStore{})

	rec := do(t, h, http.MethodGet, "/api/v1/indicators/ind-1/statistics?geo_level=Global", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got domain.StatisticsResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.TotalDataPoints != 2 || got.LatestValue != 55 || got.TrendDirection != domain.TrendUp {
		t.Errorf("got %+v", got)
	}
	if rec.Header().Get(constants.HeaderRequestID) == "" {
		t.Error("missing request id header")
	}
}

func TestStatisticsEndpointErrors(t *testing.T) {
	h := newTestAPI(t, &memStore{})

	tests := []struct {
		name   string
		target string
		code   int
	}{
		{"UnknownIndicator", "/api/v1/indicators/nope/statistics?geo_level=Global", http.StatusNotFound},
		{"MissingLevel", "/api/v1/indicators/ind-1/statistics", http.StatusBadRequest},
		{"InvertedYears", "/api/v1/indicators/ind-1/statistics?geo_level=Global&start_year=2022&end_year=2020", http.StatusBadRequest},
		{"BadYear", "/api/v1/indicators/ind-1/statistics?geo_level=Global&start_year=abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, "")
			if rec.Code != tt.code {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.code, rec.Body.String())
			}

			var resp domain.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Code != tt.code || resp.Message == "" {
				t.Errorf("resp = %+v", resp)
			}
		})
	}
}

func TestChartEndpoint(t *testing.T) {
	h := newTestAPI(t, &memStore{})

	rec := do(t, h, http.MethodGet, "/api/v1/indicators/ind-1/chart?geo_level=Province&geo_entity_ids=P1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Labels   []string `json:"labels"`
		Datasets []struct {
			Label string     `json:"label"`
			Data  []*float64 `json:"data"`
		} `json:"datasets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Labels) != 1 || got.Labels[0] != "2020" {
		t.Errorf("labels = %v", got.Labels)
	}
	if len(got.Datasets) != 1 || got.Datasets[0].Label != "Kinshasa" || *got.Datasets[0].Data[0] != 30 {
		t.Errorf("datasets = %+v", got.Datasets)
	}
}

func TestComparisonsEndpoint(t *testing.T) {
	h := newTestAPI(t, &memStore{})

	body := `{"comparisons":[{"geoLevel":"Global"},{"geoLevel":"Province","geoEntityId":"P1","label":"Capitale"}]}`
	rec := do(t, h, http.MethodPost, "/api/v1/indicators/ind-1/comparisons", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got []domain.ComparisonResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Label != "National" || got[1].Label != "Capitale" {
		t.Errorf("got %+v", got)
	}
	if got[1].Statistics.TotalDataPoints != 1 {
		t.Errorf("province points = %d", got[1].Statistics.TotalDataPoints)
	}
}

func TestComparisonsEndpointValidation(t *testing.T) {
	h := newTestAPI(t, &memStore{})

	tests := []struct {
		name string
		body string
	}{
		{"Empty", `{"comparisons":[]}`},
		{"MissingLevel", `{"comparisons":[{"geoEntityId":"P1"}]}`},
		{"InvertedYears", `{"comparisons":[{"geoLevel":"Global","startYear":2022,"endYear":2020}]}`},
		{"Malformed", `{"comparisons":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/indicators/ind-1/comparisons", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGeoEndpoint(t *testing.T) {
	h := newTestAPI(t, &memStore{})

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"Found", "/api/v1/geo/Province/P1", `"name":"Kinshasa"`},
		{"Missing", "/api/v1/geo/Province/P9", "null"},
		{"Global", "/api/v1/geo/Global", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body = %s, want %s", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	if rec := do(t, newTestAPI(t, &memStore{}), http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}

	down := &memStore{pingErr: errors.New("dial tcp: refused")}
	if rec := do(t, newTestAPI(t, down), http.MethodGet, "/healthz", ""); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	h := newTestAPI(t, &memStore{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(constants.HeaderRequestID, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(constants.HeaderRequestID); got != "req-42" {
		t.Errorf("request id = %q, want req-42", got)
	}
}
