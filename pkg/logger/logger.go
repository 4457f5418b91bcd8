// Package logger builds the process-wide zap logger from settings.
package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-eventqueue/pkg/settings"
)

const (
	defaultMaxSize    = 100 // megabytes
	defaultMaxBackups = 3
	defaultMaxAge     = 28 // days
)

// New creates a JSON zap logger. Output goes to the rotating file named in
// cfg.FileLogName, or to stdout when no file is configured.
func New(cfg settings.Logger) *zap.Logger {
	level := ParseLevel(cfg.LogLevel)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		writer(cfg),
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// ParseLevel maps a config string onto a zap level. Unknown values mean info.
func ParseLevel(s string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func writer(cfg settings.Logger) zapcore.WriteSyncer {
	if cfg.FileLogName == "" {
		return zapcore.AddSync(os.Stdout)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FileLogName,
		MaxSize:    orDefault(cfg.MaxSize, defaultMaxSize),
		MaxBackups: orDefault(cfg.MaxBackups, defaultMaxBackups),
		MaxAge:     orDefault(cfg.MaxAge, defaultMaxAge),
		Compress:   cfg.Compress,
	}
	return zapcore.AddSync(rotator)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
