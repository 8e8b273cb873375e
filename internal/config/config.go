package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/subosito/gotenv"
)

type Config struct {
	HTTPPort string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	LogLevel           string
	CookieSecure       bool
	OperatorWorkers    int
	CORSAllowedOrigins []string
}

// ProcessEnvironmentVariables builds the config from the environment. A .env
// file in the working directory is loaded first when present; variables that
// are already set win over the file.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		HTTPPort:         "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		LogLevel:         "info",
		OperatorWorkers:  4,
	}

	setString(&env.HTTPPort, "HTTP_PORT")
	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("COOKIE_SECURE"); len(v) != 0 {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("COOKIE_SECURE: %w", err)
		}
		env.CookieSecure = secure
	}

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_WORKERS: %w", err)
		}
		if workers < 1 {
			return nil, fmt.Errorf("OPERATOR_WORKERS: must be at least 1, got %d", workers)
		}
		env.OperatorWorkers = workers
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); len(v) != 0 {
		for _, origin := range strings.Split(v, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, origin)
			}
		}
	}

	return &env, nil
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*dst = v
	}
}
