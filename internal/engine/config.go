package engine

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	FetchTimeout  time.Duration  // per-request deadline for outbound YouTube calls
	HTTPClient    *http.Client
	BrowserClient *BrowserClient // nil = plain HTTP client for the watch page
	Limiter       *rate.Limiter  // nil = unlimited
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration,
// filling in defaults for anything left unset.
func Init(c Config) {
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 30 * time.Second
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{
			Timeout: c.FetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     60 * time.Second,
			},
		}
	}
	cfg = c
	Cfg = &cfg
}

// WaitLimiter blocks until the outbound rate limiter admits one request.
func WaitLimiter(ctx context.Context) error {
	if cfg.Limiter == nil {
		return nil
	}
	return cfg.Limiter.Wait(ctx)
}
