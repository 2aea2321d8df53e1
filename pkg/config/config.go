package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "PAWTRAITS_DB_DSN"
	EnvDBHost = "PAWTRAITS_DB_HOST"
	EnvDBUser = "PAWTRAITS_DB_USER"
	EnvDBName = "PAWTRAITS_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	RateLimit    RateLimitConfig
	Pricing      PricingConfig
	Platform     PlatformConfig
	Commission   CommissionConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PAWTRAITS_APP_ENV" required:"true"`
	Port         string `envconfig:"PAWTRAITS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PAWTRAITS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PAWTRAITS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PAWTRAITS_DB_DSN"`
	Driver string `envconfig:"PAWTRAITS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PAWTRAITS_DB_HOST"`
	LegacyPort     int    `envconfig:"PAWTRAITS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PAWTRAITS_DB_USER"`
	LegacyPassword string `envconfig:"PAWTRAITS_DB_PASSWORD"`
	LegacyName     string `envconfig:"PAWTRAITS_DB_NAME"`
	LegacySSLMode  string `envconfig:"PAWTRAITS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PAWTRAITS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PAWTRAITS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PAWTRAITS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PAWTRAITS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PAWTRAITS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"PAWTRAITS_REDIS_ADDR"`
	Password     string        `envconfig:"PAWTRAITS_REDIS_PASSWORD"`
	DB           int           `envconfig:"PAWTRAITS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PAWTRAITS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PAWTRAITS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PAWTRAITS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PAWTRAITS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PAWTRAITS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// JWTConfig verifies tokens minted by the platform's auth service. This
// service never issues tokens of its own.
type JWTConfig struct {
	Secret string `envconfig:"PAWTRAITS_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"PAWTRAITS_JWT_ISSUER" required:"true"`
}

type RateLimitConfig struct {
	ReferralWindow     time.Duration `envconfig:"PAWTRAITS_RATE_LIMIT_REFERRAL_WINDOW" default:"1m"`
	ReferralEmailLimit int           `envconfig:"PAWTRAITS_RATE_LIMIT_REFERRAL_EMAIL_LIMIT" default:"10"`
	ReferralIPLimit    int           `envconfig:"PAWTRAITS_RATE_LIMIT_REFERRAL_IP_LIMIT" default:"30"`
}

type PricingConfig struct {
	TierCacheTTL time.Duration `envconfig:"PAWTRAITS_PRICING_TIER_CACHE_TTL" default:"5m"`
}

// PlatformConfig points at the sibling storefront API that owns carts,
// referrals, and shipping quotes.
type PlatformConfig struct {
	BaseURL string        `envconfig:"PAWTRAITS_PLATFORM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"PAWTRAITS_PLATFORM_TIMEOUT" default:"10s"`
}

type CommissionConfig struct {
	// PartnerRateBPS is the partner commission rate in basis points.
	PartnerRateBPS int `envconfig:"PAWTRAITS_COMMISSION_PARTNER_RATE_BPS" default:"1000"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"PAWTRAITS_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"PAWTRAITS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
