package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// AppLogger wraps logrus behind the usecase logging interface.
type AppLogger struct {
	log *logrus.Logger
}

// NewAppLogger builds the application logger. Production logs JSON at info,
// anything else logs colored text at debug.
func NewAppLogger(env string) *AppLogger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		log.SetLevel(logrus.DebugLevel)
	}

	return &AppLogger{log: log}
}

var _ usecasecontract.IAppLogger = (*AppLogger)(nil)

func (l *AppLogger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

func (l *AppLogger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *AppLogger) Warnf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

func (l *AppLogger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

func (l *AppLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}
