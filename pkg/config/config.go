package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Sales        SalesConfig
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
	Env          string `envconfig:"GUSTITO_APP_ENV" required:"true"`
	Port         string `envconfig:"GUSTITO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GUSTITO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GUSTITO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GUSTITO_DB_DSN"`
	Driver string `envconfig:"GUSTITO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GUSTITO_DB_HOST"`
	LegacyPort     int    `envconfig:"GUSTITO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GUSTITO_DB_USER"`
	LegacyPassword string `envconfig:"GUSTITO_DB_PASSWORD"`
	LegacyName     string `envconfig:"GUSTITO_DB_NAME"`
	LegacySSLMode  string `envconfig:"GUSTITO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GUSTITO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GUSTITO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GUSTITO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GUSTITO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GUSTITO_REDIS_URL"`
	Address      string        `envconfig:"GUSTITO_REDIS_ADDR"`
	Password     string        `envconfig:"GUSTITO_REDIS_PASSWORD"`
	DB           int           `envconfig:"GUSTITO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GUSTITO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GUSTITO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GUSTITO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GUSTITO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GUSTITO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"GUSTITO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"GUSTITO_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"GUSTITO_JWT_EXPIRATION_MINUTES" default:"480"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GUSTITO_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GUSTITO_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GUSTITO_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GUSTITO_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GUSTITO_ARGON_KEY_LEN" default:"32"`
}

// SalesConfig holds the register-side business thresholds.
type SalesConfig struct {
	// CustomerRequiredThreshold is the sale total above which an anonymous sale
	// must carry full contact details for the final customer.
	CustomerRequiredThreshold decimal.Decimal `envconfig:"GUSTITO_SALES_CUSTOMER_REQUIRED_THRESHOLD" default:"1000"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"GUSTITO_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"GUSTITO_AUTO_MIGRATE" default:"false"`
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
