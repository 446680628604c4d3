package get_available_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/ratetable"
	getAvailableSlots "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	rates, err := ratetable.NewRepository(domain.DefaultFacilities())
	require.NoError(t, err)

	uc := getAvailableSlots.NewUseCase(rates, booking.NewRepository(), getAvailableSlots.Config{}, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/facilities/{facility}/slots", NewHandler(uc, time.UTC, nopLogger{}).Handle)
	return router
}

func get(router *mux.Router, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	router := newRouter(t)

	rec := get(router, "/api/v1/facilities/Clubhouse/slots?date=01-01-2024&duration=120")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Clubhouse", resp.Facility)
	assert.Equal(t, "01-01-2024", resp.Date)
	require.Len(t, resp.Slots, 6)
	assert.Equal(t, AvailableSlot{StartTime: "10:00", EndTime: "12:00", Price: 200, Available: true}, resp.Slots[0])
}

func TestHandler_Handle_Errors(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"missing date", "/api/v1/facilities/Clubhouse/slots", http.StatusBadRequest},
		{"bad date", "/api/v1/facilities/Clubhouse/slots?date=2024-01-01", http.StatusBadRequest},
		{"bad duration", "/api/v1/facilities/Clubhouse/slots?date=01-01-2024&duration=abc", http.StatusBadRequest},
		{"negative duration", "/api/v1/facilities/Clubhouse/slots?date=01-01-2024&duration=-1", http.StatusBadRequest},
		{"unknown facility", "/api/v1/facilities/Pool/slots?date=01-01-2024", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, get(router, tt.url).Code)
		})
	}
}
