package log

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(c *Config)
		expectErr bool
	}{
		{
			name:      "default config",
			modify:    func(c *Config) {},
			expectErr: false,
		},
		{
			name:      "invalid level",
			modify:    func(c *Config) { c.Level = "loud" },
			expectErr: true,
		},
		{
			name:      "invalid encoding",
			modify:    func(c *Config) { c.Encoding = "xml" },
			expectErr: true,
		},
		{
			name:      "empty output paths",
			modify:    func(c *Config) { c.OutputPaths = nil },
			expectErr: true,
		},
		{
			name:      "negative rotation size",
			modify:    func(c *Config) { c.MaxSizeMB = -1 },
			expectErr: true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			cfg := NewConfig()
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
			}
		})
	}
}
