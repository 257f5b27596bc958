package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Data      DataConfig
	Nominatim NominatimConfig
	Overpass  OverpassConfig
	Probe     ProbeConfig
	Worker    WorkerConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
	PlacesCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// DataConfig - корневая директория с CSV/JSON датасетами
type DataConfig struct {
	Dir string
}

type NominatimConfig struct {
	BaseURL        string
	UserAgent      string
	CountryCodes   string
	RequestTimeout time.Duration
}

type OverpassConfig struct {
	Endpoint       string
	RequestTimeout time.Duration
	MaxParallel    int
	DefaultCity    string
}

type ProbeConfig struct {
	GeocodeTimeout time.Duration
}

type WorkerConfig struct {
	Enabled                 bool
	SnapshotRefreshInterval time.Duration
}

type CORSConfig struct {
	AllowOrigins string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom читает конфигурацию из указанного env-файла; отсутствие файла не ошибка
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(v.GetInt("SEARCH_CACHE_TTL")) * time.Second,
			PlacesCacheTTL: time.Duration(v.GetInt("PLACES_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Data: DataConfig{
			Dir: v.GetString("DATA_DIR"),
		},
		Nominatim: NominatimConfig{
			BaseURL:        strings.TrimRight(v.GetString("NOMINATIM_BASE_URL"), "/"),
			UserAgent:      v.GetString("NOMINATIM_USER_AGENT"),
			CountryCodes:   v.GetString("NOMINATIM_COUNTRY_CODES"),
			RequestTimeout: time.Duration(v.GetInt("NOMINATIM_REQUEST_TIMEOUT")) * time.Second,
		},
		Overpass: OverpassConfig{
			Endpoint:       v.GetString("OVERPASS_ENDPOINT"),
			RequestTimeout: time.Duration(v.GetInt("OVERPASS_REQUEST_TIMEOUT")) * time.Second,
			MaxParallel:    v.GetInt("OVERPASS_MAX_PARALLEL"),
			DefaultCity:    v.GetString("OVERPASS_DEFAULT_CITY"),
		},
		Probe: ProbeConfig{
			GeocodeTimeout: time.Duration(v.GetInt("PROBE_GEOCODE_TIMEOUT_MS")) * time.Millisecond,
		},
		Worker: WorkerConfig{
			Enabled:                 v.GetBool("WORKER_ENABLED"),
			SnapshotRefreshInterval: time.Duration(v.GetInt("SNAPSHOT_REFRESH_INTERVAL")) * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8001)
	v.SetDefault("API_ENV", "development")

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SEARCH_CACHE_TTL", 3600)
	v.SetDefault("PLACES_CACHE_TTL", 900)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATA_DIR", "./data")

	v.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("NOMINATIM_USER_AGENT", "SmartCityDashboard/Backend-1.0")
	v.SetDefault("NOMINATIM_COUNTRY_CODES", "in")
	v.SetDefault("NOMINATIM_REQUEST_TIMEOUT", 10)

	v.SetDefault("OVERPASS_ENDPOINT", "https://overpass-api.de/api/interpreter")
	v.SetDefault("OVERPASS_REQUEST_TIMEOUT", 30)
	v.SetDefault("OVERPASS_MAX_PARALLEL", 2)
	v.SetDefault("OVERPASS_DEFAULT_CITY", "New Delhi")

	v.SetDefault("PROBE_GEOCODE_TIMEOUT_MS", 1500)

	v.SetDefault("WORKER_ENABLED", false)
	v.SetDefault("SNAPSHOT_REFRESH_INTERVAL", 60)

	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8000")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
