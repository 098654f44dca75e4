// SPDX-License-Identifier: MIT

// Package logging configures the process logger of the fastmul command.
// Library packages never log on their own; the command hands the logger
// to multiply through multiply.WithLogger.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init builds the process logger.
// An unknown level falls back to info. With console false and no file the
// logger writes to io.Discard.
func Init(level, logFile string, console bool) (*logrus.Logger, error) {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var writers []io.Writer
	if console {
		writers = append(writers, os.Stderr)
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		writers = append(writers, f)
	}

	switch len(writers) {
	case 0:
		l.SetOutput(io.Discard)
	case 1:
		l.SetOutput(writers[0])
	default:
		l.SetOutput(io.MultiWriter(writers...))
	}

	log = l

	return l, nil
}

// Get returns the logger built by Init, or a default info logger.
func Get() *logrus.Logger {
	if log == nil {
		log = logrus.New()
	}

	return log
}

// Component returns an entry tagged with the given component name.
func Component(name string) *logrus.Entry {
	return Get().WithField("component", name)
}
