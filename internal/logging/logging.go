// Package logging builds the application logger. The terminal belongs to
// the UI, so log output only ever goes to a rotating file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/llehouerou/periodic/internal/config"
)

const (
	appName     = "periodic"
	logFileName = "periodic.log"
)

// LevelOff disables logging entirely.
const LevelOff = "off"

// New returns a JSON file logger configured by cfg. A level of "off"
// returns a no-op logger. The returned close function flushes and closes
// the log file.
func New(cfg config.LogConfig) (*zap.Logger, func(), error) {
	if strings.EqualFold(cfg.Level, LevelOff) {
		return zap.NewNop(), func() {}, nil
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	path := cfg.File
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	core := zapcore.NewCore(newEncoder(), zapcore.AddSync(writer), level)
	logger := zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named(appName)

	closeFn := func() {
		_ = logger.Sync()
		_ = writer.Close()
	}
	return logger, closeFn, nil
}

// DefaultPath returns the log file location under the XDG state directory.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, logFileName))
}

func newEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}
