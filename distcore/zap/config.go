package zap

import (
	"fmt"

	logpkg "github.com/packwire/lib-distcore/distcore/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment controls the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Config contains all required logger initialization inputs.
type Config struct {
	Environment Environment
	Level       string
}

func (c Config) validate() error {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentLocal:
		return nil
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
}

// New creates a structured logger and returns it with a runtime-adjustable
// level handle.
func New(cfg Config) (*Logger, zap.AtomicLevel, error) {
	if err := cfg.validate(); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid zap config: %w", err)
	}

	baseConfig := buildConfigByEnvironment(cfg.Environment)

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	baseConfig.Level = level
	baseConfig.DisableStacktrace = true

	zapLogger, err := baseConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{logger: zapLogger, atomicLevel: level}, level, nil
}

// NewNop returns a logger that discards all output. Useful in tests.
func NewNop() *Logger {
	return &Logger{logger: zap.NewNop(), atomicLevel: zap.NewAtomicLevel()}
}

// buildConfigByEnvironment returns the baseline zap config for an environment:
// JSON output for deployed environments, console output for local work.
func buildConfigByEnvironment(env Environment) zap.Config {
	if env == EnvironmentLocal || env == EnvironmentDevelopment {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		return cfg
	}

	return zap.NewProductionConfig()
}

// resolveLevel converts the configured level string into an atomic level,
// defaulting to info when unset.
func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if cfg.Level == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}

	parsed, err := logpkg.ParseLevel(cfg.Level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	return zap.NewAtomicLevelAt(toZapLevel(parsed)), nil
}
