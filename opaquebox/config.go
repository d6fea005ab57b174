package opaquebox

import (
	"context"
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-opaquebox/opaquebox/log"
	"github.com/LerianStudio/lib-opaquebox/opaquebox/zap"
	"github.com/caarlos0/env/v11"
)

// Config controls the package-level diagnostics.
type Config struct {
	// TraceReads logs a debug entry for every read through a Box.
	TraceReads bool `env:"OPAQUEBOX_TRACE_READS" envDefault:"false"`

	// Logging builds a zap logger from Environment and LogLevel and installs
	// it with SetLogger. Leave it off when the application installs its own.
	Logging bool `env:"OPAQUEBOX_LOGGING" envDefault:"false"`

	Environment string `env:"OPAQUEBOX_ENV" envDefault:"production"`
	LogLevel    string `env:"OPAQUEBOX_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse opaquebox config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.LogLevel) == "" {
		return nil
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid OPAQUEBOX_LOG_LEVEL: %w", err)
	}

	return nil
}

// Configure applies cfg to the package: the read tracing switch and, when
// cfg.Logging is set, a freshly built zap logger.
func Configure(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	if cfg.Logging {
		zapCfg := zap.Config{Environment: zap.Environment(cfg.Environment)}

		if strings.TrimSpace(cfg.LogLevel) != "" {
			level, _ := log.ParseLevel(cfg.LogLevel)
			zapCfg.Level = level.String()
		}

		logger, _, err := zap.New(zapCfg)
		if err != nil {
			return fmt.Errorf("configure opaquebox logger: %w", err)
		}

		SetLogger(logger)
	}

	SetReadTracing(cfg.TraceReads)

	Logger().Log(context.Background(), log.LevelInfo, "opaquebox configured",
		log.Bool("trace_reads", cfg.TraceReads),
		log.Bool("logging", cfg.Logging),
		log.String("log_level", cfg.LogLevel),
	)

	return nil
}
