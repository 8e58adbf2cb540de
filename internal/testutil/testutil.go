package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"projarapi/internal/projar"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func intPtr(v int) *int { return &v }

// Catalog returns a fresh sample catalog. Record titles cover accented and
// unaccented spellings of the same word, subjects split across records,
// and authors with different roles.
func Catalog() projar.Dataset {
	return projar.Dataset{
		Sectors: []projar.Sector{
			{ID: 1, Name: "Cartografia"},
			{ID: 2, Name: "Engenharia"},
		},
		Locations: []projar.Location{
			{ID: 1, Name: "Arquivo Central"},
			{ID: 2, Name: "Mapoteca"},
		},
		Subjects: []projar.Subject{
			{ID: 1, Name: "Hidrografia"},
			{ID: 2, Name: "Costa litorânea"},
			{ID: 3, Name: "Navegação"},
		},
		Executors: []projar.Executor{
			{ID: 1, Name: "DNOS", Type: "federal"},
			{ID: 2, Name: "Prefeitura Municipal", Type: "municipal"},
		},
		Areas: []projar.GeographicArea{
			{ID: 1, Name: "Sudeste"},
			{ID: 2, Name: "Sul"},
		},
		Authors: []projar.Author{
			{ID: 5, Name: "Silva", Role: projar.RoleSecondaryEvent},
			{ID: 6, Name: "Andrade", Role: projar.RolePrimary},
			{ID: 7, Name: "Instituto Geográfico", Role: projar.RoleSecondaryCorporate},
		},
		Records: []projar.DatasetRecord{
			{
				Record: projar.Record{
					ID: 1, CallNumber: "MP-001", Title: "Mapa de São Paulo", Date: date("2020-03-15"),
					Content: "Mapa", Scale: "1:5.000", SectorID: intPtr(1), LocationID: intPtr(1),
				},
				Subjects: []int{1}, Executors: []int{1}, Areas: []int{1}, Authors: []int{6},
			},
			{
				Record: projar.Record{
					ID: 2, CallNumber: "PL_002", Title: "Planta da cidade de Sao Vicente", Date: date("2019-03-02"),
					Content: "Planta", SectorID: intPtr(2), LocationID: intPtr(2),
				},
				Subjects: []int{2}, Executors: []int{2}, Areas: []int{1}, Authors: []int{5},
			},
			{
				Record: projar.Record{
					ID: 3, CallNumber: "MP-003", Title: "SÃO JOSÉ DOS CAMPOS", Date: date("2020-04-10"),
					Content: "Mapa", SectorID: intPtr(1), LocationID: intPtr(2),
				},
				Subjects: []int{1, 2}, Executors: []int{1, 2}, Authors: []int{5, 6},
			},
			{
				Record: projar.Record{
					ID: 4, CallNumber: "CT-004", Title: "Carta do Rio Grande",
					Content: "Carta náutica", SectorID: intPtr(1),
				},
				Subjects: []int{3}, Areas: []int{2}, Authors: []int{7},
			},
			{
				Record: projar.Record{
					ID: 5, CallNumber: "PL-005", Title: "Grande planície do rio Negro", Date: date("2021-03-01"),
					Content: "Planta", LocationID: intPtr(1),
				},
				Subjects: []int{3}, Areas: []int{2},
			},
			{
				Record: projar.Record{
					ID: 6, CallNumber: "MP-006", Title: "Zona portuária", Date: date("2018-11-20"),
					Content: "Mapa", SectorID: intPtr(2),
				},
				Executors: []int{2},
			},
			{
				Record: projar.Record{
					ID: 7, CallNumber: "CT-007", Title: "carta de são carlos", Date: date("2020-07-07"),
				},
				Authors: []int{7},
			},
		},
	}
}

// IDs returns the record ids in order.
func IDs(records []projar.Record) []int {
	ids := make([]int, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewFormRequest creates a url-encoded form POST for testing
func NewFormRequest(path string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
	Raw    []byte
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
		Raw:    bodyBytes,
	}
}
