package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *zap.Logger

const (
	ModeRelease     = "release"
	ModeDevelopment = "development"
	ModeDebug       = "debug"
)

const (
	maxSize    = 50 // the maximum size in megabytes of the log file
	maxBackups = 30 // the maximum number of old log files to retain
	maxAge     = 28 // the maximum number of days to retain old log files based on the timestamp encoded in their filename
)

// SetupLogger builds the process logger and stores it in Logger. An empty
// logFile logs to the console only.
func SetupLogger(logFile, mode string) (logger *zap.Logger, err error) {
	if mode == ModeRelease {
		logger, err = NewProductionLogger(logFile)
	} else {
		logger, err = NewDevelopmentLogger(logFile)
	}
	if err != nil {
		return nil, err
	}
	Logger = logger.Named("readings")
	return Logger, nil
}

func rotateWriteSyncer(logFile string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxSize, // megabytes
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	})
}

func withLogFile(logFile string, encoderConfig zapcore.EncoderConfig, level zapcore.Level) zap.Option {
	return zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		if logFile == "" {
			return c
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			rotateWriteSyncer(logFile),
			level,
		)
		return zapcore.NewTee(c, core)
	})
}

func NewProductionLogger(logFile string) (*zap.Logger, error) {
	c := zap.NewProductionConfig()

	c.DisableCaller = true
	c.DisableStacktrace = true

	return c.Build(withLogFile(logFile, zap.NewProductionEncoderConfig(), zap.InfoLevel))
}

func NewDevelopmentLogger(logFile string) (*zap.Logger, error) {
	c := zap.NewDevelopmentConfig()

	return c.Build(withLogFile(logFile, zap.NewDevelopmentEncoderConfig(), zap.DebugLevel))
}
