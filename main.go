// TaskTrackerService is an in-memory web service that provides CRUD operations for tasks.
//
// Tasks are kept in process memory in insertion order and are lost on restart.
// The first listing of an empty store seeds it with ten generated tasks.
// Endpoint calls and errors are counted with Prometheus, and an optional rate
// limiter can be enabled through the environment.
//
// The following endpoints are available:
//
//  1. GET /            - Greeting
//  2. GET /tasks       - Get all tasks
//  3. GET /tasks/{id}  - Get a task by ID
//  4. POST /tasks      - Create a new task
//  5. PUT /tasks/{id}  - Update an existing task
//  6. DELETE /tasks/{id} - Delete an existing task
//  7. GET /metrics     - Display Prometheus metrics
//
// Configuration is read from the environment and an optional .env file,
// see the config package. You may use godoc -http=:6060 to view the documentation in your browser.
package main

import (
	"net/http"
	"os"

	"TaskTrackerService/config"
	"TaskTrackerService/handlers"
	"TaskTrackerService/metrics"
	"TaskTrackerService/store"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.JSONFormatter{})

	app := &cli.App{
		Name:  "tasks",
		Usage: "in-memory task tracking HTTP service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file to load before reading the environment",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "address to bind, overrides TASKS_HTTP_HOST",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "port to listen on, overrides TASKS_HTTP_PORT",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level, overrides TASKS_LOG_LEVEL",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("could not run server")
	}
}

func run(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("env-file"))
	if err != nil {
		return errors.Wrap(err, "could not load config")
	}
	if ctx.IsSet("host") {
		cfg.HTTP.Host = ctx.String("host")
	}
	if ctx.IsSet("port") {
		cfg.HTTP.Port = ctx.Int("port")
	}
	if ctx.IsSet("log-level") {
		cfg.Log.Level = ctx.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	log.SetLevel(cfg.LogLevel())

	registry := prometheus.NewRegistry()
	m := metrics.New(registry, metrics.WithRateLimit(cfg.Rate.Limit, cfg.Rate.Burst))

	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		gatherer = registry
	}

	taskHandler := handlers.NewTaskHandler(store.NewMemoryTaskStore(), m, log)
	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           handlers.NewRouter(taskHandler, m, gatherer),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	log.WithFields(logrus.Fields{
		"address":   cfg.Address(),
		"metrics":   cfg.Metrics.Enabled,
		"rateLimit": cfg.Rate.Limit,
	}).Info("Server listening on " + cfg.Address())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}
	return nil
}
