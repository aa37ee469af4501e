package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a development logger at the given level. Unknown levels fall
// back to info.
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()

	switch level {
	case "debug":
		cfg.Level.SetLevel(zap.DebugLevel)
	case "warn":
		cfg.Level.SetLevel(zap.WarnLevel)
	case "error":
		cfg.Level.SetLevel(zap.ErrorLevel)
	default:
		cfg.Level.SetLevel(zap.InfoLevel)
	}

	lgr, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return lgr, nil
}
