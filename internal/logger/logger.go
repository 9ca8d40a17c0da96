// Package logger builds the process-wide logrus logger.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/config"
)

// New returns a logger configured from cfg. Format "json" selects the JSON
// formatter; anything else logs human-readable text.
func New(cfg config.LogConfig) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return l
}

// LogError writes a structured error entry tagged with where it happened.
func LogError(l logrus.FieldLogger, module, funcName, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   module,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	l.WithFields(fields).Error(err.Error())
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
