package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

const sampleConfig = `
[app]
mode = "both"
location = "Asia/Kolkata"

[server]
http_port = 9090
read_timeout = 5
write_timeout = 5
idle_timeout = 30
shutdown_timeout = 5

[logs]
level = "debug"

[metrics]
enabled = true
service_name = "facility_booking"
path = "/metrics"

[kafka]
enabled = true
brokers = ["localhost:9092"]
topic = "bookings"
require_acks = 1
compression = "snappy"

[policy]
conflict = "exclusive"
pricing = "prorated"

[[facilities]]
name = "Hall"
allow_overlap = true

  [[facilities.bands]]
  start = "08:00"
  end = "20:00"
  rate = 10

  [[facilities.bands]]
  start = "12:00"
  end = "14:00"
  rate = 5.5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithEnvFile(filepath.Join(t.TempDir(), "missing.toml"), "")
	require.NoError(t, err)

	assert.Equal(t, ModeCLI, cfg.App.Mode)
	assert.True(t, cfg.RunsCLI())
	assert.False(t, cfg.RunsHTTP())
	assert.Equal(t, domain.DefaultPolicy(), cfg.BookingPolicy())
	assert.Equal(t, domain.DefaultFacilities(), cfg.RateTable())

	loc, err := cfg.BookingLocation()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_File(t *testing.T) {
	cfg, err := LoadWithEnvFile(writeFile(t, "config.toml", sampleConfig), "")
	require.NoError(t, err)

	assert.True(t, cfg.RunsCLI())
	assert.True(t, cfg.RunsHTTP())
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 1, cfg.Kafka.RequireAcks)
	assert.Equal(t, domain.Policy{Conflict: domain.ConflictExclusive, Pricing: domain.PricingProrated}, cfg.BookingPolicy())

	loc, err := cfg.BookingLocation()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())

	facilities := cfg.RateTable()
	require.Len(t, facilities, 1)
	assert.Equal(t, "Hall", facilities[0].Name)
	assert.True(t, facilities[0].AllowOverlap)
	assert.Equal(t, []domain.RateBand{
		{Start: types.TimeString("08:00"), End: types.TimeString("20:00"), HourlyRate: 10},
		{Start: types.TimeString("12:00"), End: types.TimeString("14:00"), HourlyRate: 5.5},
	}, facilities[0].Bands)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_MODE", "HTTP")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FILE", "/tmp/booking.log")
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	cfg, err := LoadWithEnvFile("", "")
	require.NoError(t, err)

	assert.Equal(t, ModeHTTP, cfg.App.Mode)
	assert.Equal(t, "warn", cfg.Logs.Level)
	assert.Equal(t, "/tmp/booking.log", cfg.Logs.File)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_DotEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "HTTP_PORT=7070\n")
	t.Cleanup(func() { os.Unsetenv("HTTP_PORT") })

	cfg, err := LoadWithEnvFile("", envFile)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := LoadWithEnvFile("", "")
	assert.ErrorIs(t, err, ErrInvalidEnv)
}

func TestLoad_BrokenFile(t *testing.T) {
	_, err := LoadWithEnvFile(writeFile(t, "config.toml", "[app\nmode="), "")
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown mode", func(c *Config) { c.App.Mode = "daemon" }},
		{"unknown location", func(c *Config) { c.App.Location = "Mars/Olympus" }},
		{"port out of range", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"unknown log level", func(c *Config) { c.Logs.Level = "loud" }},
		{"metrics path", func(c *Config) { c.Metrics.Path = "metrics" }},
		{"kafka without brokers", func(c *Config) { c.Kafka.Enabled = true }},
		{"bad broker address", func(c *Config) { c.Kafka.Brokers = []string{"localhost"} }},
		{"unknown acks", func(c *Config) { c.Kafka.RequireAcks = 2 }},
		{"unknown compression", func(c *Config) { c.Kafka.Compression = "brotli" }},
		{"unknown conflict policy", func(c *Config) { c.Policy.Conflict = "sometimes" }},
		{"unknown pricing policy", func(c *Config) { c.Policy.Pricing = "free" }},
		{"facility without name", func(c *Config) {
			c.Facilities = []FacilityConfig{{Bands: []BandConfig{{Start: "10:00", End: "11:00"}}}}
		}},
		{"facility without bands", func(c *Config) {
			c.Facilities = []FacilityConfig{{Name: "Hall"}}
		}},
		{"malformed band time", func(c *Config) {
			c.Facilities = []FacilityConfig{{Name: "Hall", Bands: []BandConfig{{Start: "10am", End: "11:00"}}}}
		}},
		{"negative rate", func(c *Config) {
			c.Facilities = []FacilityConfig{{Name: "Hall", Bands: []BandConfig{{Start: "10:00", End: "11:00", Rate: -1}}}}
		}},
		{"band ends before it starts", func(c *Config) {
			c.Facilities = []FacilityConfig{{Name: "Hall", Bands: []BandConfig{{Start: "12:00", End: "11:00"}}}}
		}},
		{"duplicate facility", func(c *Config) {
			band := []BandConfig{{Start: "10:00", End: "11:00"}}
			c.Facilities = []FacilityConfig{{Name: "Hall", Bands: band}, {Name: "Hall", Bands: band}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}
