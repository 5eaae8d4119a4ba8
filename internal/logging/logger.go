// Package logging writes the per-run log file kept inside the source
// directory. Lines use a fixed, sortable format:
//
//	2026-01-02 15:04:05 | INFO | moved source=/a dest=/b
package logging

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/wizzomafizzo/tidy/internal/config"
)

// Filename is the log file name created inside the source directory.
const Filename = "log.txt"

const timestampFormat = "2006-01-02 15:04:05"

// Rotated backups are named by lumberjack as log-<timestamp>.txt.
var backupPattern = regexp.MustCompile(`^log-\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}(\.\d+)?\.txt$`)

// IsLogFile reports whether name is the run log or one of its rotated
// backups. Both live in the source directory and must never be
// organized away.
func IsLogFile(name string) bool {
	return name == Filename || backupPattern.MatchString(name)
}

// RunLog is a zerolog logger backed by an append-only log file. The file
// is opened once per run and must be closed on every exit path.
type RunLog struct {
	zerolog.Logger
	closer    io.Closer
	closeOnce sync.Once
}

// Open opens (or creates) the log file at path for appending and returns
// a RunLog writing to it. When cfg.MaxSize is set the sink rotates via
// lumberjack; otherwise the file grows without bound and is never
// truncated.
func Open(path string, cfg config.LoggingConfig) (*RunLog, error) {
	var sink io.WriteCloser
	if cfg.MaxSize > 0 {
		sink = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		}
	} else {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // log lives beside the files it describes
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		sink = file
	}

	logger := zerolog.New(lineWriter(sink)).
		Level(parseLevel(cfg.Level)).
		With().Timestamp().Logger()

	return &RunLog{Logger: logger, closer: sink}, nil
}

// NewWriter returns a RunLog writing to w, for tests.
func NewWriter(w io.Writer, level string) *RunLog {
	logger := zerolog.New(lineWriter(w)).
		Level(parseLevel(level)).
		With().Timestamp().Logger()
	return &RunLog{Logger: logger}
}

// Close closes the underlying log file.
func (l *RunLog) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.closer != nil {
			err = l.closer.Close()
		}
	})
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// lineWriter renders records as "timestamp | LEVEL | message ..." lines.
func lineWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		FormatTimestamp: func(i any) string {
			parsed, err := time.Parse(time.RFC3339, fmt.Sprint(i))
			if err != nil {
				return fmt.Sprint(i) + " |"
			}
			return parsed.Local().Format(timestampFormat) + " |"
		},
		FormatLevel: func(i any) string {
			return strings.ToUpper(fmt.Sprint(i)) + " |"
		},
	}
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
