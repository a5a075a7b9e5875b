package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/2beens/gymlog/internal"
	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/logging"
	"github.com/2beens/gymlog/pkg"

	log "github.com/sirupsen/logrus"
)

// secrets are read from the environment, never from the config file.
type secrets struct {
	authSecret       string
	postgresPassword string
	redisPassword    string
	sentryDSN        string
	honeycombEnabled bool
}

func secretsFromEnv() (secrets, error) {
	s := secrets{
		authSecret:       os.Getenv("GYMLOG_AUTH_SECRET"),
		postgresPassword: os.Getenv("GYMLOG_POSTGRES_PASS"),
		redisPassword:    os.Getenv("GYMLOG_REDIS_PASS"),
		sentryDSN:        os.Getenv("SENTRY_DSN"),
		honeycombEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	}
	if s.authSecret == "" {
		return s, fmt.Errorf("auth secret not set, use GYMLOG_AUTH_SECRET")
	}
	return s, nil
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}
	if err := checkLogsDir(cfg.LogsPath); err != nil {
		panic(err)
	}

	sec, err := secretsFromEnv()
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sec.sentryDSN,
		SentryServerName: "gymlog-service",
	})
	log.Warnf("---->> running in [%s] environment, port %d", cfg.Environment, cfg.Port)

	if sec.postgresPassword == "" {
		log.Warnln("postgres password not set. use GYMLOG_POSTGRES_PASS")
	}
	if sec.redisPassword == "" {
		log.Warnln("redis password not set. use GYMLOG_REDIS_PASS")
	}
	if sec.honeycombEnabled && os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("honeycomb enabled but HONEYCOMB_API_KEY env var not set")
	}

	versionInfo, err := lastCommitHash()
	if err != nil {
		log.Tracef("no version info: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		AuthSecret:              sec.authSecret,
		PostgresPassword:        sec.postgresPassword,
		RedisPassword:           sec.redisPassword,
		VersionInfo:             versionInfo,
		HoneycombTracingEnabled: sec.honeycombEnabled,
	})
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("shutdown signal received")
	server.GracefulShutdown()
}

func checkLogsDir(logsPath string) error {
	if logsPath == "" {
		return nil
	}
	logsDir := filepath.Dir(logsPath)
	exists, err := pkg.DirExists(logsDir)
	if err != nil {
		return fmt.Errorf("check logs dir: %w", err)
	}
	if !exists {
		return fmt.Errorf("logs dir does not exist: %s", logsDir)
	}
	return nil
}

// lastCommitHash reads HEAD of the repo the binary runs from.
func lastCommitHash() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
