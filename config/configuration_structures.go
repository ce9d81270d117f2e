package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// JWTConfig : AccessTokenTTL задаётся в секундах
type JWTConfig struct {
	SecretKey      string `yaml:"secret_key"`
	AccessTokenTTL int    `yaml:"access_token_ttl"`
	Issuer         string `yaml:"issuer"`
}

// SessionConfig : политика жизни refresh токенов
type SessionConfig struct {
	SlidingWindowDays int    `yaml:"sliding_window_days"`
	AbsoluteMaxDays   int    `yaml:"absolute_max_days"`
	ShortSessionHours int    `yaml:"short_session_hours"`
	Store             string `yaml:"store"`
}

type GoogleConfig struct {
	ClientID string `yaml:"client_id"`
}

type CookieConfig struct {
	Secure      bool   `yaml:"secure"`
	RefreshPath string `yaml:"refresh_path"`
	Domain      string `yaml:"domain"`
}

// TTL : время жизни кэша в секундах
type TTL struct {
	EventsCache int `yaml:"events_cache"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)
