package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidEnv возвращается при некорректном значении переменной окружения
	ErrInvalidEnv = errors.New("config: invalid environment variable")

	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Режимы запуска
const (
	ModeCLI  = "cli"
	ModeHTTP = "http"
	ModeBoth = "both"
)

// Config конфигурация приложения
type Config struct {
	App        AppConfig        `toml:"app"`
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Kafka      KafkaConfig      `toml:"kafka"`
	Policy     PolicyConfig     `toml:"policy"`
	Facilities []FacilityConfig `toml:"facilities" validate:"dive"`
}

// AppConfig общие настройки
type AppConfig struct {
	Mode     string `toml:"mode" validate:"required,oneof=cli http both"`
	Location string `toml:"location" validate:"required,timezone"` // Локация для дат и времени бронирований
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`
}

// LogsConfig настройки логирования. Пустой File - вывод в stderr.
type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name" validate:"required"`
	Path        string `toml:"path" validate:"required,startswith=/"`
}

// KafkaConfig настройки публикации событий о бронированиях
type KafkaConfig struct {
	Enabled        bool     `toml:"enabled"`
	Brokers        []string `toml:"brokers" validate:"required_if=Enabled true,dive,hostname_port"`
	Topic          string   `toml:"topic" validate:"required_if=Enabled true"`
	RequireAcks    int      `toml:"require_acks" validate:"oneof=-1 0 1"`
	Compression    string   `toml:"compression" validate:"omitempty,oneof=none gzip snappy lz4 zstd"`
	MaxAttempts    int      `toml:"max_attempts" validate:"min=0"`
	BatchTimeoutMs int      `toml:"batch_timeout_ms" validate:"min=0"`
	Async          bool     `toml:"async"`
}

// PolicyConfig правила пересечения и расчета стоимости
type PolicyConfig struct {
	Conflict string `toml:"conflict" validate:"oneof=inclusive exclusive"`
	Pricing  string `toml:"pricing" validate:"oneof=contained prorated"`
}

// FacilityConfig площадка и ее тарифы
type FacilityConfig struct {
	Name         string       `toml:"name" validate:"required"`
	AllowOverlap bool         `toml:"allow_overlap"`
	Bands        []BandConfig `toml:"bands" validate:"required,min=1,dive"`
}

// BandConfig тариф площадки
type BandConfig struct {
	Start string  `toml:"start" validate:"required,hhmm"`
	End   string  `toml:"end" validate:"required,hhmm"`
	Rate  float64 `toml:"rate" validate:"gte=0"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		App: AppConfig{
			Mode:     ModeCLI,
			Location: "UTC",
		},
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "facility_booking",
			Path:        "/metrics",
		},
		Kafka: KafkaConfig{
			Topic:          "facility-bookings",
			RequireAcks:    -1,
			Compression:    "none",
			MaxAttempts:    3,
			BatchTimeoutMs: 10,
		},
		Policy: PolicyConfig{
			Conflict: string(domain.ConflictInclusive),
			Pricing:  string(domain.PricingContained),
		},
	}
}

// Load загружает конфигурацию из TOML файла и переменных окружения.
// Отсутствующий файл не считается ошибкой: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	return LoadWithEnvFile(path, ".env")
}

// LoadWithEnvFile загружает конфигурацию, предварительно подгружая переменные из envFile (если он есть)
func LoadWithEnvFile(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: load %s: %v", ErrReadConfig, envFile, err)
		}
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет значения из переменных окружения
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("APP_MODE"); ok {
		c.App.Mode = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.Logs.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		c.Logs.File = strings.TrimSpace(v)
	}

	if v, ok := os.LookupEnv("HTTP_PORT"); ok {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q: %v", ErrInvalidEnv, v, err)
		}
		c.Server.HTTPPort = port
	}

	if v, ok := os.LookupEnv("METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: METRICS_ENABLED=%q: %v", ErrInvalidEnv, v, err)
		}
		c.Metrics.Enabled = enabled
	}

	if v, ok := os.LookupEnv("KAFKA_ENABLED"); ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: KAFKA_ENABLED=%q: %v", ErrInvalidEnv, v, err)
		}
		c.Kafka.Enabled = enabled
	}

	if v, ok := os.LookupEnv("KAFKA_BROKERS"); ok {
		brokers := make([]string, 0)
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
		c.Kafka.Brokers = brokers
	}

	return nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("hhmm", validateTimeString); err != nil {
		return fmt.Errorf("%w: register validation: %v", ErrInvalidConfig, err)
	}

	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]struct{}, len(c.Facilities))
	for _, f := range c.Facilities {
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("%w: duplicate facility %q", ErrInvalidConfig, f.Name)
		}
		seen[f.Name] = struct{}{}

		for _, b := range f.Bands {
			if !types.TimeString(b.Start).IsBefore(types.TimeString(b.End)) {
				return fmt.Errorf("%w: facility %q: band %s-%s must start before it ends",
					ErrInvalidConfig, f.Name, b.Start, b.End)
			}
		}
	}

	return nil
}

func validateTimeString(fl validator.FieldLevel) bool {
	return types.TimeString(fl.Field().String()).Validate() == nil
}

// BookingLocation возвращает локацию для дат и времени бронирований
func (c *Config) BookingLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: location %q: %v", ErrInvalidConfig, c.App.Location, err)
	}
	return loc, nil
}

// BookingPolicy возвращает правила бронирования
func (c *Config) BookingPolicy() domain.Policy {
	return domain.Policy{
		Conflict: domain.ConflictPolicy(c.Policy.Conflict),
		Pricing:  domain.PricingPolicy(c.Policy.Pricing),
	}
}

// RateTable возвращает таблицу тарифов. Если площадки не заданы, используется таблица по умолчанию.
func (c *Config) RateTable() []domain.Facility {
	if len(c.Facilities) == 0 {
		return domain.DefaultFacilities()
	}

	facilities := make([]domain.Facility, 0, len(c.Facilities))
	for _, f := range c.Facilities {
		bands := make([]domain.RateBand, 0, len(f.Bands))
		for _, b := range f.Bands {
			start, _ := types.NewTimeStringFromString(b.Start)
			end, _ := types.NewTimeStringFromString(b.End)
			bands = append(bands, domain.RateBand{
				Start:      start,
				End:        end,
				HourlyRate: b.Rate,
			})
		}
		facilities = append(facilities, domain.Facility{
			Name:         f.Name,
			Bands:        bands,
			AllowOverlap: f.AllowOverlap,
		})
	}
	return facilities
}

// RunsCLI сообщает, нужно ли запускать интерактивный цикл
func (c *Config) RunsCLI() bool {
	return c.App.Mode == ModeCLI || c.App.Mode == ModeBoth
}

// RunsHTTP сообщает, нужно ли запускать HTTP сервер
func (c *Config) RunsHTTP() bool {
	return c.App.Mode == ModeHTTP || c.App.Mode == ModeBoth
}
