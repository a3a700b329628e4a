package server

import (
	"github.com/iov-one/cattery/errors"
	"github.com/tendermint/tendermint/libs/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger for given level and wraps it so that it can
// be used wherever tendermint expects a log.Logger. Debug mode switches to
// the human friendly development encoding.
func NewLogger(level string, debug bool) (log.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "log level %q", level)
	}

	var conf zap.Config
	if debug {
		conf = zap.NewDevelopmentConfig()
	} else {
		conf = zap.NewProductionConfig()
	}
	conf.Level = zap.NewAtomicLevelAt(lvl)

	z, err := conf.Build()
	if err != nil {
		return nil, errors.Wrap(errors.ErrHuman, err.Error())
	}
	return NewZapLogger(z), nil
}

// NewZapLogger adapts a zap logger. Key value pairs are passed as loosely
// typed zap fields.
func NewZapLogger(z *zap.Logger) log.Logger {
	return zapLogger{s: z.Sugar()}
}

type zapLogger struct {
	s *zap.SugaredLogger
}

var _ log.Logger = zapLogger{}

func (l zapLogger) Debug(msg string, keyvals ...interface{}) {
	l.s.Debugw(msg, keyvals...)
}

func (l zapLogger) Info(msg string, keyvals ...interface{}) {
	l.s.Infow(msg, keyvals...)
}

func (l zapLogger) Error(msg string, keyvals ...interface{}) {
	l.s.Errorw(msg, keyvals...)
}

func (l zapLogger) With(keyvals ...interface{}) log.Logger {
	return zapLogger{s: l.s.With(keyvals...)}
}
