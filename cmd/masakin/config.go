package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/nkiryanov/masakin/internal/logger"
	"github.com/nkiryanov/masakin/internal/service/auth/tokenmanager"
)

const (
	defaultListenAddr      = "localhost:8000"
	defaultLoggingLevel    = logger.LevelInfo
	defaultEnvironment     = logger.EnvProduction
	defaultCORSOrigin      = "*"
	defaultRateLimitWindow = 15 * time.Minute
	defaultRateLimitMax    = 100
	defaultAuthLimitMax    = 5
)

type Config struct {
	// Default logging level
	LogLevel string

	// Address on which the masakin API will be run
	ListenAddr string

	// Database to connect to
	DatabaseDSN string

	// Secrets to sign access and refresh tokens with. Have to differ
	AccessSecret  string
	RefreshSecret string

	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Environment: development or production
	Environment string

	// Origin allowed to make cross origin requests
	CORSOrigin string

	// Requests allowed per client IP within the window: for whole API and for auth routes
	RateLimitWindow time.Duration
	RateLimitMax    int
	AuthLimitMax    int
}

func NewConfig() *Config {
	return &Config{
		LogLevel:        defaultLoggingLevel,
		ListenAddr:      defaultListenAddr,
		Environment:     defaultEnvironment,
		AccessTTL:       tokenmanager.DefaultAccessTTL,
		RefreshTTL:      tokenmanager.DefaultRefreshTTL,
		CORSOrigin:      defaultCORSOrigin,
		RateLimitWindow: defaultRateLimitWindow,
		RateLimitMax:    defaultRateLimitMax,
		AuthLimitMax:    defaultAuthLimitMax,
	}
}

// Load variable from '.env' file (should be located at working directory)
func (c *Config) LoadDotEnv(getwd func() (string, error)) error {
	wd, err := getwd()
	if err != nil {
		return err
	}

	envMap, err := godotenv.Read(filepath.Join(wd, ".env"))

	switch {
	case err == nil:
		return c.LoadEnv(func(key string) string {
			return envMap[key]
		})
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return err
	}
}

func (c *Config) LoadEnv(getenv func(string) string) error {
	// Set option to value if it not empty
	setString := func(o *string) func(value string) error {
		return func(value string) error {
			if value != "" {
				*o = value
			}
			return nil
		}
	}
	setDuration := func(o *time.Duration) func(value string) error {
		return func(value string) error {
			if value == "" {
				return nil
			}
			d, err := time.ParseDuration(value)
			if err != nil {
				return err
			}
			*o = d
			return nil
		}
	}
	setInt := func(o *int) func(value string) error {
		return func(value string) error {
			if value == "" {
				return nil
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			*o = n
			return nil
		}
	}

	envMap := map[string]func(string) error{
		"RUN_ADDRESS":            setString(&c.ListenAddr),
		"DATABASE_URI":           setString(&c.DatabaseDSN),
		"JWT_SECRET":             setString(&c.AccessSecret),
		"JWT_REFRESH_SECRET":     setString(&c.RefreshSecret),
		"JWT_EXPIRES_IN":         setDuration(&c.AccessTTL),
		"JWT_REFRESH_EXPIRES_IN": setDuration(&c.RefreshTTL),
		"LOG_LEVEL":              setString(&c.LogLevel),
		"ENVIRONMENT":            setString(&c.Environment),
		"CORS_ORIGIN":            setString(&c.CORSOrigin),
		"RATE_LIMIT_WINDOW":      setDuration(&c.RateLimitWindow),
		"RATE_LIMIT_MAX":         setInt(&c.RateLimitMax),
		"AUTH_RATE_LIMIT_MAX":    setInt(&c.AuthLimitMax),
	}

	var errs []error
	for key, parseFn := range envMap {
		if err := parseFn(getenv(key)); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

func (c *Config) ParseFlags(args []string) error {
	fs := pflag.NewFlagSet("masakin", pflag.ContinueOnError)

	fs.StringVarP(&c.ListenAddr, "address", "a", c.ListenAddr, "Server listen address")
	fs.StringVarP(&c.DatabaseDSN, "database", "d", c.DatabaseDSN, "Database connection string")
	fs.StringVarP(&c.AccessSecret, "jwt-secret", "s", c.AccessSecret, "Access token signing secret")
	fs.StringVarP(&c.RefreshSecret, "jwt-refresh-secret", "r", c.RefreshSecret, "Refresh token signing secret")
	fs.DurationVar(&c.AccessTTL, "jwt-expires-in", c.AccessTTL, "Access token lifetime")
	fs.DurationVar(&c.RefreshTTL, "jwt-refresh-expires-in", c.RefreshTTL, "Refresh token lifetime")
	fs.StringVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Logging level (debug, info, warn, error)")
	fs.StringVarP(&c.Environment, "environment", "e", c.Environment, "Environment (development, production)")
	fs.StringVar(&c.CORSOrigin, "cors-origin", c.CORSOrigin, "Allowed CORS origin")
	fs.DurationVar(&c.RateLimitWindow, "rate-limit-window", c.RateLimitWindow, "Rate limit window")
	fs.IntVar(&c.RateLimitMax, "rate-limit-max", c.RateLimitMax, "Requests per IP within window, 0 disables limit")
	fs.IntVar(&c.AuthLimitMax, "auth-rate-limit-max", c.AuthLimitMax, "Auth requests per IP within window, 0 disables limit")

	return fs.Parse(args)
}

// Check options that have no sane defaults
func (c *Config) Validate() error {
	var errs []error

	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database connection string is required"))
	}
	if c.AccessSecret == "" || c.RefreshSecret == "" {
		errs = append(errs, errors.New("jwt secret and jwt refresh secret are required"))
	}
	if c.AccessSecret != "" && c.AccessSecret == c.RefreshSecret {
		errs = append(errs, errors.New("jwt secret and jwt refresh secret have to differ"))
	}

	return errors.Join(errs...)
}
