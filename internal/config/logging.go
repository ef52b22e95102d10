package config

import "go.uber.org/zap"

// InitLogger sets up the zap logger and installs it as the global logger so
// handlers can log through zap.S().
func InitLogger() func() {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewExample()
	}

	zap.ReplaceGlobals(logger)

	return func() { _ = logger.Sync() }
}
