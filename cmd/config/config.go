package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment  string
	LogLevel     string
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	RabbitMQ     RabbitMQConfig
	Auth         AuthConfig
	Geocoding    GeocodingConfig
	Notification NotificationConfig
	Metrics      MetricsConfig
	Internal     InternalConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	ShutdownWait time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	AdminSecretKey string
}

type GeocodingConfig struct {
	BaseURL   string
	Timeout   time.Duration
	CacheTTL  time.Duration
	UserAgent string
}

type NotificationConfig struct {
	FeedSize int64
}

type MetricsConfig struct {
	Enabled   bool
	Path      string
	Namespace string
}

// InternalConfig is used by the notifier to call back into the API.
type InternalConfig struct {
	APIKey string
	APIURL string
}

// LoadEnvFile loads variables from a dotenv file without overriding the real environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Environment: getString("ENVIRONMENT", "development"),
		LogLevel:    getString("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:         getString("SERVER_PORT", "5000"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownWait: getDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getString("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getString("DB_USER", "root"),
			Password:        getString("DB_PASSWORD", ""),
			Name:            getString("DB_NAME", "roadside"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getString("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getString("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getString("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getString("RABBITMQ_USER", "guest"),
			Password: getString("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:      getString("JWT_SECRET", ""),
			JWTExpiration:  getDuration("JWT_EXPIRE", 7*24*time.Hour),
			SessionExpTime: getDuration("SESSION_EXPIRE", 7*24*time.Hour),
			AdminSecretKey: getString("ADMIN_SECRET_KEY", ""),
		},
		Geocoding: GeocodingConfig{
			BaseURL:   getString("GEOCODING_BASE_URL", "https://nominatim.openstreetmap.org"),
			Timeout:   getDuration("GEOCODING_TIMEOUT", 5*time.Second),
			CacheTTL:  getDuration("GEOCODING_CACHE_TTL", 24*time.Hour),
			UserAgent: getString("GEOCODING_USER_AGENT", "roadside-assistance/1.0"),
		},
		Notification: NotificationConfig{
			FeedSize: int64(getInt("NOTIFICATION_FEED_SIZE", 50)),
		},
		Metrics: MetricsConfig{
			Enabled:   getBool("METRICS_ENABLED", true),
			Path:      getString("METRICS_PATH", "/metrics"),
			Namespace: getString("METRICS_NAMESPACE", "roadside"),
		},
		Internal: InternalConfig{
			APIKey: getString("INTERNAL_API_KEY", ""),
			APIURL: getString("INTERNAL_API_URL", "http://localhost:5000"),
		},
	}
}

// GetDSN returns the MySQL data source name
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
