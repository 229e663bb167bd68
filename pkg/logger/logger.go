// Package logger wraps zap with a per-package constructor so every package
// logs with a stable "package" field.
package logger

import (
	"os"

	"go.uber.org/zap"
)

type Logger struct {
	*zap.Logger
}

func (l *Logger) init() error {
	var err error
	if os.Getenv("HPCLAUNCH_MODE") == "development" {
		l.Logger, err = zap.NewDevelopment()
	} else {
		l.Logger, err = zap.NewProduction()
	}
	return err
}

// New returns a logger tagged with the given package name.
func New(pkg string) *Logger {
	l := &Logger{}
	if err := l.init(); err != nil {
		panic(err)
	}

	l.Logger = l.Logger.With(
		zap.String("package", pkg),
	)

	return l
}
