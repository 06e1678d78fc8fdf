// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/younwookim/scroller/internal/infrastructure/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a text logger writing to out and, when cfg.File is set, to a
// size-rotated file as well. The returned closer releases the file.
func New(cfg config.LogConfig, out io.Writer) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if cfg.File == "" {
		logger.SetOutput(out)
		return logger, nopCloser{}, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	logger.SetOutput(io.MultiWriter(out, rotator))
	return logger, rotator, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
