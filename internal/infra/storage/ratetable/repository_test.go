package ratetable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

func TestNewRepository_Default(t *testing.T) {
	repo, err := NewRepository(domain.DefaultFacilities())
	require.NoError(t, err)

	ctx := context.Background()
	assert.Equal(t, []string{"Clubhouse", "Tennis Court"}, repo.Facilities(ctx))
	assert.True(t, repo.Has(ctx, "Clubhouse"))
	assert.False(t, repo.Has(ctx, "clubhouse"))

	bands, err := repo.RatesFor(ctx, "Clubhouse")
	require.NoError(t, err)
	assert.Equal(t, []domain.RateBand{
		{Start: "10:00", End: "16:00", HourlyRate: 100},
		{Start: "16:00", End: "22:00", HourlyRate: 500},
	}, bands)
}

func TestRatesFor_UnknownFacility(t *testing.T) {
	repo, err := NewRepository(domain.DefaultFacilities())
	require.NoError(t, err)

	_, err = repo.RatesFor(context.Background(), "Swimming Pool")
	assert.ErrorIs(t, err, ErrFacilityNotFound)

	_, err = repo.GetFacility(context.Background(), "Swimming Pool")
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestRatesFor_ReturnsCopy(t *testing.T) {
	repo, err := NewRepository(domain.DefaultFacilities())
	require.NoError(t, err)

	bands, err := repo.RatesFor(context.Background(), "Tennis Court")
	require.NoError(t, err)
	bands[0].HourlyRate = 0

	again, err := repo.RatesFor(context.Background(), "Tennis Court")
	require.NoError(t, err)
	assert.Equal(t, 50.0, again[0].HourlyRate)
}

func TestNewRepository_Validation(t *testing.T) {
	tests := []struct {
		name       string
		facilities []domain.Facility
		wantErr    error
	}{
		{
			name:       "empty name",
			facilities: []domain.Facility{{Bands: []domain.RateBand{{Start: "10:00", End: "11:00"}}}},
			wantErr:    ErrEmptyFacilityName,
		},
		{
			name:       "no bands",
			facilities: []domain.Facility{{Name: "Gym"}},
			wantErr:    ErrNoBands,
		},
		{
			name: "duplicate facility",
			facilities: []domain.Facility{
				{Name: "Gym", Bands: []domain.RateBand{{Start: "10:00", End: "11:00"}}},
				{Name: "Gym", Bands: []domain.RateBand{{Start: "12:00", End: "13:00"}}},
			},
			wantErr: ErrDuplicateFacility,
		},
		{
			name:       "missing end",
			facilities: []domain.Facility{{Name: "Gym", Bands: []domain.RateBand{{Start: "10:00", HourlyRate: 10}}}},
			wantErr:    ErrInvalidBand,
		},
		{
			name:       "malformed start",
			facilities: []domain.Facility{{Name: "Gym", Bands: []domain.RateBand{{Start: "10", End: "11:00"}}}},
			wantErr:    ErrInvalidBand,
		},
		{
			name:       "start after end",
			facilities: []domain.Facility{{Name: "Gym", Bands: []domain.RateBand{{Start: "12:00", End: "11:00"}}}},
			wantErr:    ErrInvalidBand,
		},
		{
			name:       "negative rate",
			facilities: []domain.Facility{{Name: "Gym", Bands: []domain.RateBand{{Start: "10:00", End: "11:00", HourlyRate: -1}}}},
			wantErr:    ErrInvalidBand,
		},
		{
			name: "overlapping bands",
			facilities: []domain.Facility{{Name: "Gym", Bands: []domain.RateBand{
				{Start: "10:00", End: "14:00", HourlyRate: 10},
				{Start: "13:00", End: "18:00", HourlyRate: 20},
			}}},
			wantErr: ErrOverlappingBands,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRepository(tt.facilities)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewRepository_AllowOverlap(t *testing.T) {
	repo, err := NewRepository([]domain.Facility{{
		Name:         "Gym",
		AllowOverlap: true,
		Bands: []domain.RateBand{
			{Start: "10:00", End: "14:00", HourlyRate: 10},
			{Start: "13:00", End: "18:00", HourlyRate: 20},
		},
	}})
	require.NoError(t, err)

	f, err := repo.GetFacility(context.Background(), "Gym")
	require.NoError(t, err)
	assert.True(t, f.AllowOverlap)
	assert.Len(t, f.Bands, 2)
}

func TestNewRepository_EmptyBandBounds(t *testing.T) {
	_, err := NewRepository([]domain.Facility{{
		Name:  "Gym",
		Bands: []domain.RateBand{{End: "11:00", HourlyRate: 10}},
	}})

	assert.ErrorIs(t, err, ErrInvalidBand)
	assert.ErrorContains(t, err, "start and end are required")
}
