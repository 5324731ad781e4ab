package log

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	Debugw(msg string, keyAndValues ...interface{})
	Infow(msg string, keyAndValues ...interface{})
	Warnw(msg string, keyAndValues ...interface{})
	Errorw(msg string, keyAndValues ...interface{})

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})

	Sync()
}

var defaultLogger Logger = &nullLogger{}

var once sync.Once

func GetLogger(config *Config) (Logger, error) {
	var err error
	once.Do(func() {
		if config == nil {
			err = fmt.Errorf("config is nil")
			return
		}
		level := zap.InfoLevel
		if err = level.Set(config.Level); err != nil {
			return
		}
		var encoder zapcore.Encoder
		switch config.Encoding {
		case "json":
			encodeCfg := zap.NewProductionEncoderConfig()
			encodeCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			encoder = zapcore.NewJSONEncoder(encodeCfg)
		case "console":
			encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		default:
			err = fmt.Errorf("unknown encoding %s", config.Encoding)
			return
		}

		core := zapcore.NewCore(
			encoder,
			zapcore.NewMultiWriteSyncer(makeSyncers(config)...),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl >= level }),
		)

		defaultLogger = &zapLogger{
			SugaredLogger: zap.New(core).Sugar(),
		}
	})
	return defaultLogger, err
}

func makeSyncers(config *Config) []zapcore.WriteSyncer {
	syncers := make([]zapcore.WriteSyncer, len(config.OutputPaths))
	for i, path := range config.OutputPaths {
		switch path {
		case "stdout":
			syncers[i] = zapcore.Lock(os.Stdout)
		case "stderr":
			syncers[i] = zapcore.Lock(os.Stderr)
		default:
			syncers[i] = zapcore.AddSync(&lumberjack.Logger{
				Filename:   path,
				MaxSize:    config.MaxSizeMB,
				MaxBackups: config.MaxBackups,
				Compress:   config.Compress,
			})
		}
	}
	return syncers
}

// zapLogger promotes the leveled methods of the sugared logger.
type zapLogger struct {
	*zap.SugaredLogger
}

// Sync ...
func (z *zapLogger) Sync() {
	_ = z.SugaredLogger.Sync()
}

func Close() {
	defaultLogger.Sync()
}
