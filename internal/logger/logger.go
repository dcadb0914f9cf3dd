package logger

import (
	"time"

	"github.com/goserg/tournament/internal/config"
	"github.com/sirupsen/logrus"
)

func New(cfg config.Server) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.DateTime,
		FullTimestamp:   true,
	})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if cfg.Debug {
		level = logrus.TraceLevel
	}
	l.SetLevel(level)
	return l
}
