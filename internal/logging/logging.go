package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// New builds the application logger. When the board is drawn the terminal
// belongs to the screen, so console output is dropped and entries only reach
// the rotating log file.
func New(c *config.Config) (*logrus.Logger, error) {
	log := logrus.New()

	level := logrus.InfoLevel
	if c.Development {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if c.Headless {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: c.Development})
	} else {
		log.SetOutput(io.Discard)
	}

	if c.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.LogFile,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Level:      level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", c.LogFile, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
