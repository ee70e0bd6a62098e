package bootstrap

import (
	"log/slog"

	"toolshed/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
		func(cfg config.Config) config.UploadConfig { return cfg.Upload },
	),
)

func NewConfig() (config.Config, error) {
	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err.Error())
	}
	return config.LoadConfig()
}
