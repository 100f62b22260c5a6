package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// New returns the application logger. Debug mode turns on trace output.
func New(debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.DateTime,
		FullTimestamp:   true,
	})
	l.SetLevel(logrus.InfoLevel)
	if debug {
		l.SetLevel(logrus.TraceLevel)
	}
	return l
}
