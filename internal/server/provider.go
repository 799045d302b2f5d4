package server

import (
	"log/slog"

	"github.com/preston-bernstein/cfb-meta-service/internal/config"
	"github.com/preston-bernstein/cfb-meta-service/internal/logging"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers/espn"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScoreboardProvider {
	switch cfg.Provider {
	case config.ProviderFixture, "":
		return fixture.New()
	case config.ProviderESPN:
		return espn.NewClient(espn.Config{
			BaseURL: cfg.ESPN.BaseURL,
			Timeout: cfg.ESPN.Timeout,
		})
	case config.ProviderFile:
		return fixture.FromFile(cfg.ScoreboardPath)
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
