package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/campusarena/competition-api/internal/config"
)

// Init builds the process-wide logger for env and installs it as zap.L().
func Init(env string) error {
	var (
		logger *zap.Logger
		err    error
	)

	switch env {
	case config.EnvProduction:
		logger, err = zap.NewProduction()
	case config.EnvTest:
		logger = zap.NewNop()
	default:
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}
	if err != nil {
		return fmt.Errorf("failed to build zap logger -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
