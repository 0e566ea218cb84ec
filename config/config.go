// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Prefix of every environment variable read by Load.
const Prefix = "TASKS_"

type Config struct {
	HTTP    HTTP    `envPrefix:"HTTP_"`
	Log     Log     `envPrefix:"LOG_"`
	Metrics Metrics `envPrefix:"METRICS_"`
	Rate    Rate    `envPrefix:"RATE_"`
}

type HTTP struct {
	Host              string        `env:"HOST" envDefault:"127.0.0.1"`
	Port              int           `env:"PORT" envDefault:"8000"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
}

type Log struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

type Metrics struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

// Rate configures the request limiter. A zero Limit disables it.
type Rate struct {
	Limit float64 `env:"LIMIT" envDefault:"0"`
	Burst int     `env:"BURST" envDefault:"20"`
}

// Load reads the given dotenv files, or .env when none is given, then parses
// the environment. Missing dotenv files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "could not load %s", file)
		}
	}

	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: Prefix,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Address returns the listen address in host:port format.
func (c *Config) Address() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

// LogLevel returns the parsed log level. Call Validate first.
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c *Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid server port %d: must be between 1 and 65535", c.HTTP.Port)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(err, "invalid log level %q", c.Log.Level)
	}
	if c.Rate.Limit < 0 {
		return fmt.Errorf("invalid rate limit %v: must not be negative", c.Rate.Limit)
	}
	if c.Rate.Limit > 0 && c.Rate.Burst < 1 {
		return fmt.Errorf("invalid rate burst %d: must be at least 1 when rate limiting is enabled", c.Rate.Burst)
	}
	return nil
}
