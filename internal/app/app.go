package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	server "ironsight/server"
	servernet "ironsight/server/internal/net"
	"ironsight/server/internal/observability"
	"ironsight/server/internal/telemetry"
	"ironsight/server/logging"
	loggingSinks "ironsight/server/logging/sinks"
)

type Config struct {
	Logger telemetry.Logger
}

// Run wires the logging router, metrics registry, hub, and HTTP server
// together and serves until the context is cancelled.
func Run(ctx context.Context, cfg Config) error {
	telemetryLogger := cfg.Logger
	if telemetryLogger == nil {
		telemetryLogger = telemetry.WrapLogger(log.Default())
	}

	logConfig := logging.DefaultConfig()
	if raw := os.Getenv("IRONSIGHT_LOG_SINKS"); raw != "" {
		logConfig.EnabledSinks = splitList(raw)
	}
	if raw := os.Getenv("IRONSIGHT_LOG_JSON_PATH"); raw != "" {
		logConfig.JSON.FilePath = raw
		if !logConfig.HasSink("json") {
			logConfig.EnabledSinks = append(logConfig.EnabledSinks, "json")
		}
	}

	var namedSinks []logging.NamedSink
	if logConfig.HasSink("console") {
		namedSinks = append(namedSinks, logging.NamedSink{
			Name: "console",
			Sink: loggingSinks.NewConsoleSink(os.Stdout, logConfig.Console),
		})
	}
	var jsonFile *os.File
	if logConfig.HasSink("json") && logConfig.JSON.FilePath != "" {
		file, err := os.OpenFile(logConfig.JSON.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open json log file: %w", err)
		}
		jsonFile = file
		namedSinks = append(namedSinks, logging.NamedSink{
			Name: "json",
			Sink: loggingSinks.NewJSON(file, logConfig.JSON.FlushInterval),
		})
	}

	router, err := logging.NewRouter(logging.SystemClock{}, logConfig, namedSinks)
	if err != nil {
		return fmt.Errorf("failed to construct logging router: %w", err)
	}
	defer func() {
		if cerr := router.Close(context.Background()); cerr != nil {
			telemetryLogger.Printf("failed to close logging router: %v", cerr)
		}
		if jsonFile != nil {
			jsonFile.Close()
		}
	}()

	hubCfg := hubConfigFromEnv(telemetryLogger)
	hubCfg.Logger = telemetryLogger
	hubCfg.Publisher = router

	metrics := observability.NewMetrics()
	hubCfg.Metrics = metrics

	hub := server.NewHub(hubCfg)

	handler := servernet.NewHTTPHandler(hub, servernet.HTTPHandlerConfig{
		Logger:      telemetryLogger,
		Metrics:     metrics,
		RouterStats: router.Stats,
	})

	srv := &http.Server{Addr: hubCfg.Addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	telemetryLogger.Printf("server listening on %s", hubCfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}
}

func hubConfigFromEnv(logger telemetry.Logger) server.Config {
	cfg := server.DefaultConfig()

	if raw := os.Getenv("IRONSIGHT_ADDR"); raw != "" {
		cfg.Addr = raw
	}
	if raw := os.Getenv("IRONSIGHT_DEFAULT_MAP"); raw != "" {
		cfg.DefaultMap = raw
	}
	if raw := os.Getenv("IRONSIGHT_DEFAULT_MODE"); raw != "" {
		cfg.DefaultGameMode = raw
	}
	if raw := os.Getenv("IRONSIGHT_MIN_RESPAWN_DELAY_MS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.MinRespawnDelay = time.Duration(value) * time.Millisecond
		} else {
			logger.Printf("invalid IRONSIGHT_MIN_RESPAWN_DELAY_MS=%q: %v", raw, err)
		}
	}
	if raw := os.Getenv("IRONSIGHT_INVINCIBILITY_MS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.InvincibilityWindow = time.Duration(value) * time.Millisecond
		} else {
			logger.Printf("invalid IRONSIGHT_INVINCIBILITY_MS=%q: %v", raw, err)
		}
	}
	if raw := os.Getenv("IRONSIGHT_MATCH_DURATION_S"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.MatchDuration = time.Duration(value) * time.Second
		} else {
			logger.Printf("invalid IRONSIGHT_MATCH_DURATION_S=%q: %v", raw, err)
		}
	}
	if raw := os.Getenv("IRONSIGHT_NAME_POLICY"); raw != "" {
		cfg.NamePolicy = server.NamePolicy(raw)
	}
	if raw := os.Getenv("IRONSIGHT_SPAWN_POLICY"); raw != "" {
		cfg.SpawnPolicy = server.SpawnPolicy(raw)
	}
	if raw := os.Getenv("IRONSIGHT_ALLOW_LATE_JOIN"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			cfg.AllowLateJoin = value
		} else {
			logger.Printf("invalid IRONSIGHT_ALLOW_LATE_JOIN=%q: %v", raw, err)
		}
	}

	return cfg
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
