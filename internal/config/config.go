package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	API      APIConfig
	Sync     SyncConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Server   ServerConfig
}

type APIConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	UniversityID string
}

type SyncConfig struct {
	PageSize           int
	ActivityPageLimit  int
	UniversityPageSize int
	StalenessWindow    time.Duration
	LockTTL            time.Duration
	NotifyBaseURL      string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type ServerConfig struct {
	HTTPPort      string
	InternalToken string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.API = APIConfig{
		BaseURL:      opt("FACULTETUS_BASE_URL", "https://facultetus.ru/api"),
		ClientID:     req("FACULTETUS_CLIENT_ID"),
		ClientSecret: req("FACULTETUS_CLIENT_SECRET"),
		UniversityID: opt("FACULTETUS_UNIVERSITY_ID", ""),
	}

	pageSize, err := optInt("FACULTETUS_OFFSET", 20)
	if err != nil {
		return Config{}, err
	}
	activityLimit, err := optInt("FACULTETUS_LIMIT", 80)
	if err != nil {
		return Config{}, err
	}
	// limit is ignored upstream for universities, pages come back 50 rows each
	universityPage, err := optInt("FACULTETUS_UNIVERSITY_PAGE", 50)
	if err != nil {
		return Config{}, err
	}
	staleHours, err := optInt("SYNC_STALENESS_HOURS", 2)
	if err != nil {
		return Config{}, err
	}
	lockMinutes, err := optInt("SYNC_LOCK_TTL_MINUTES", 30)
	if err != nil {
		return Config{}, err
	}

	cfg.Sync = SyncConfig{
		PageSize:           pageSize,
		ActivityPageLimit:  activityLimit,
		UniversityPageSize: universityPage,
		StalenessWindow:    time.Duration(staleHours) * time.Hour,
		LockTTL:            time.Duration(lockMinutes) * time.Minute,
		NotifyBaseURL:      opt("SYNC_NOTIFY_URL", ""),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     req("DB_HOST"),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout: 10 * time.Second,
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
	}

	cfg.Server = ServerConfig{
		HTTPPort:      opt("HTTP_PORT", "8080"),
		InternalToken: strings.TrimSpace(os.Getenv("INTERNAL_TOKEN")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return n, nil
}
