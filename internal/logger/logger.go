package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger section of config.yml
type Config struct {
	Level      int8     `yaml:"level"`
	Encoding   string   `yaml:"encoding"`
	OutputPath []string `yaml:"outputPath"`
}

func DefaultConfig() Config {
	return Config{
		Level:      int8(zapcore.InfoLevel),
		Encoding:   "console",
		OutputPath: []string{"stderr"},
	}
}

// New builds the sugared logger used across the app
func New(cfg Config) (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	outputs := cfg.OutputPath
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}
	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapcore.Level(cfg.Level)),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputs,
		ErrorOutputPaths: []string{
			"stderr",
		},
	}
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("cannot build logger: %w", err)
	}
	return l.Sugar(), nil
}

// Nop is used where no log output is wanted, mostly tests
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
