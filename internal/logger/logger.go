package logger

import (
	"go.uber.org/zap"

	"github.com/dastanaron/quizcards/internal/config"
)

// New builds the application logger. The terminal belongs to the TUI,
// so all output goes to the log file in the data directory.
func New(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zapCfg = zap.NewProductionConfig()
	}

	zapCfg.OutputPaths = []string{cfg.LogPath()}
	zapCfg.ErrorOutputPaths = []string{cfg.LogPath()}

	return zapCfg.Build()
}
