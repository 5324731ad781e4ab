package log

import (
	"errors"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level       string   `env:"LOG_LEVEL"`
	Encoding    string   `env:"LOG_ENCODING"`
	OutputPaths []string `env:"LOG_OUTPUT_PATHS"`
	Compress    bool     `env:"LOG_COMPRESS"`
	MaxSizeMB   int      `env:"LOG_MAX_SIZE_MB"`
	MaxBackups  int      `env:"LOG_MAX_BACKUPS"`
}

func NewConfig() *Config {
	return &Config{
		Level:       "info",
		Encoding:    "console",
		OutputPaths: []string{"stdout"},
		MaxSizeMB:   100,
		MaxBackups:  3,
	}
}

func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return err
	}

	if c.Encoding != "json" && c.Encoding != "console" {
		return errors.New("invalid encoding")
	}

	if len(c.OutputPaths) == 0 {
		return errors.New("output paths cannot be empty")
	}

	if c.MaxSizeMB < 0 || c.MaxBackups < 0 {
		return errors.New("log rotation sizes cannot be negative")
	}

	return nil
}

func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Level, "log-level", c.Level, "log level")
	fs.StringVar(&c.Encoding, "log-encoding", c.Encoding, "log encoding, json or console")
	fs.StringSliceVar(&c.OutputPaths, "log-file", c.OutputPaths, "log output paths, stdout/stderr or file paths")
	fs.BoolVar(&c.Compress, "log-compress", c.Compress, "gzip rotated log files")
}
