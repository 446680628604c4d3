package facilities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/ratetable"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func newService(t *testing.T) (*Service, *booking.Repository) {
	t.Helper()

	rates, err := ratetable.NewRepository(domain.DefaultFacilities())
	require.NoError(t, err)

	repo := booking.NewRepository()
	return NewService(rates, repo, nopLogger{}), repo
}

func seed(t *testing.T, repo *booking.Repository, facility string, d, fromHour, toHour int) *domain.Reservation {
	t.Helper()

	created, err := repo.Create(context.Background(), &domain.Reservation{
		Facility: facility,
		Start:    day(d).Add(time.Duration(fromHour) * time.Hour),
		End:      day(d).Add(time.Duration(toHour) * time.Hour),
		Amount:   float64(toHour-fromHour) * 100,
	})
	require.NoError(t, err)
	return created
}

func TestService_ListFacilities(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.ListFacilities(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Clubhouse", resp.Facilities[0].Name)
	assert.Equal(t, []models.RateBand{
		{Start: "10:00", End: "16:00", HourlyRate: 100},
		{Start: "16:00", End: "22:00", HourlyRate: 500},
	}, resp.Facilities[0].Bands)
	assert.Equal(t, "Tennis Court", resp.Facilities[1].Name)
	assert.Equal(t, []string{"Clubhouse", "Tennis Court"}, svc.FacilityNames(context.Background()))
}

func TestService_GetFacility(t *testing.T) {
	svc, _ := newService(t)

	facility, err := svc.GetFacility(context.Background(), "Tennis Court")
	require.NoError(t, err)
	assert.Equal(t, 50.0, facility.Bands[0].HourlyRate)

	_, err = svc.GetFacility(context.Background(), "Pool")
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestService_ListReservations(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	seed(t, repo, "Clubhouse", 1, 14, 15)
	seed(t, repo, "Clubhouse", 1, 10, 12)
	seed(t, repo, "Clubhouse", 2, 10, 12)
	seed(t, repo, "Tennis Court", 1, 10, 12)

	t.Run("whole facility", func(t *testing.T) {
		resp, err := svc.ListReservations(ctx, &models.ListReservationsRequest{Facility: "Clubhouse"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
	})

	t.Run("single day ordered by start", func(t *testing.T) {
		date := day(1)
		resp, err := svc.ListReservations(ctx, &models.ListReservationsRequest{Facility: "Clubhouse", Date: &date})
		require.NoError(t, err)

		require.Equal(t, 2, resp.Total)
		assert.Equal(t, "10:00", resp.Reservations[0].StartTime)
		assert.Equal(t, "12:00", resp.Reservations[0].EndTime)
		assert.Equal(t, "01-01-2024", resp.Reservations[0].Date)
		assert.Equal(t, "14:00", resp.Reservations[1].StartTime)
	})

	t.Run("empty facility", func(t *testing.T) {
		date := day(5)
		resp, err := svc.ListReservations(ctx, &models.ListReservationsRequest{Facility: "Tennis Court", Date: &date})
		require.NoError(t, err)
		assert.Zero(t, resp.Total)
		assert.NotNil(t, resp.Reservations)
	})

	t.Run("unknown facility", func(t *testing.T) {
		_, err := svc.ListReservations(ctx, &models.ListReservationsRequest{Facility: "Pool"})
		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})
}

func TestService_GetReservation(t *testing.T) {
	svc, repo := newService(t)
	created := seed(t, repo, "Clubhouse", 1, 10, 12)

	got, err := svc.GetReservation(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 200.0, got.Amount)

	_, err = svc.GetReservation(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
