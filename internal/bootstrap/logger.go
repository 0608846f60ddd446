package bootstrap

import (
	"go.uber.org/zap"

	"github.com/nextgenxp/nextgenxp-backend/internal/logging"
)

// SetupLogger builds the process logger and installs it as zap's global logger.
func SetupLogger(env, level string) (*zap.Logger, error) {
	logger, err := logging.New(env, level)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
