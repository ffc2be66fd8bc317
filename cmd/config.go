package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/felixbrock/hellopage/internal/app"
)

const (
	defaultPort            = "8000"
	defaultRateLimit       = 10
	defaultRateBurst       = 20
	defaultShutdownTimeout = 5 * time.Second
)

func config() app.Config {
	port := os.Getenv("GOPORT")
	if port == "" {
		port = defaultPort
	}

	rateLimit := float64(defaultRateLimit)
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			slog.Error(fmt.Sprintf("RATE_LIMIT environment variable invalid: %s", err.Error()))
		} else {
			rateLimit = parsed
		}
	}

	rateBurst := defaultRateBurst
	if v := os.Getenv("RATE_BURST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			slog.Error(fmt.Sprintf("RATE_BURST environment variable invalid: %q", v))
		} else {
			rateBurst = parsed
		}
	}

	shutdownTimeout := defaultShutdownTimeout
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			slog.Error(fmt.Sprintf("SHUTDOWN_TIMEOUT environment variable invalid: %s", err.Error()))
		} else {
			shutdownTimeout = parsed
		}
	}

	return app.Config{
		Port:            port,
		RateLimit:       rateLimit,
		RateBurst:       rateBurst,
		ShutdownTimeout: shutdownTimeout,
	}
}
