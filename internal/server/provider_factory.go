package server

import (
	"log/slog"

	"github.com/preston-bernstein/cfb-meta-service/internal/config"
	"github.com/preston-bernstein/cfb-meta-service/internal/metrics"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers"
)

// providerFactory assembles the configured provider with shared instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ScoreboardProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.ScoreboardProvider) providers.ScoreboardProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}
