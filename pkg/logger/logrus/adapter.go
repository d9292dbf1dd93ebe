package logrus

import (
	"os"

	"github.com/raykavin/bootsnrun/pkg/logger"

	"github.com/sirupsen/logrus"
)

type Adapter struct {
	*logrus.Entry
}

// New builds a console logrus logger behind the logger.Logger
// abstraction, accepting the same settings as the zerolog backend.
func New(level, dateTimeLayout string, colored, jsonFormat bool) (*Adapter, error) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logLevel)

	if jsonFormat {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: dateTimeLayout})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: dateTimeLayout,
			ForceColors:     colored,
			DisableColors:   !colored,
		})
	}

	return NewAdapter(l), nil
}

// NewAdapter wraps a logrus logger so it satisfies logger.Logger.
func NewAdapter(l *logrus.Logger) *Adapter {
	return &Adapter{logrus.NewEntry(l)}
}

// GetLevel implements logger.Logger.
func (l *Adapter) GetLevel() logger.Level {
	return toLevel(l.Entry.Logger.GetLevel())
}

// SetLevel implements logger.Logger.
func (l *Adapter) SetLevel(level logger.Level) {
	l.Entry.Logger.SetLevel(toLogrusLevel(level))
}

// WithError implements logger.Logger.
func (l *Adapter) WithError(err error) logger.Logger {
	return &Adapter{l.Entry.WithError(err)}
}

// WithField implements logger.Logger.
func (l *Adapter) WithField(key string, value any) logger.Logger {
	return &Adapter{l.Entry.WithField(key, value)}
}

// WithFields implements logger.Logger.
func (l *Adapter) WithFields(fields map[string]any) logger.Logger {
	return &Adapter{l.Entry.WithFields(fields)}
}

// toLevel converts logrus.Level to logger.Level.
func toLevel(level logrus.Level) logger.Level {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return logger.DebugLevel
	case logrus.InfoLevel:
		return logger.InfoLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	case logrus.ErrorLevel:
		return logger.ErrorLevel
	case logrus.FatalLevel, logrus.PanicLevel:
		return logger.FatalLevel
	}
	return logger.NoLevel
}

// toLogrusLevel converts logger.Level to logrus.Level.
func toLogrusLevel(level logger.Level) logrus.Level {
	switch level {
	case logger.DebugLevel:
		return logrus.DebugLevel
	case logger.InfoLevel:
		return logrus.InfoLevel
	case logger.WarnLevel:
		return logrus.WarnLevel
	case logger.ErrorLevel:
		return logrus.ErrorLevel
	case logger.FatalLevel:
		return logrus.FatalLevel
	}
	return logrus.InfoLevel
}
