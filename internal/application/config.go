package application

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	utilsstrings "github.com/GBA-BI/drs-manifest/pkg/utils/strings"
)

type Config struct {
	WorkDir     string `env:"MANIFEST_WORK_DIR"`
	Concurrency int    `env:"MANIFEST_CONCURRENCY"`
	Format      string `env:"MANIFEST_FORMAT"`
}

func NewConfig() *Config {
	return &Config{
		WorkDir:     consts.DefaultWorkDir,
		Concurrency: consts.DefaultConcurrency,
		Format:      string(consts.ManifestFormatGetm),
	}
}

func (c *Config) Validate() error {
	if c.WorkDir == "" || !filepath.IsAbs(c.WorkDir) {
		return apperror.NewInvalidArgumentError("Config.WorkDir", c.WorkDir)
	}
	if c.Concurrency < 1 {
		return apperror.NewInvalidArgumentError("Config.Concurrency", strconv.Itoa(c.Concurrency))
	}
	formats := []string{string(consts.ManifestFormatGetm), string(consts.ManifestFormatTNU)}
	if flag := utilsstrings.Contains(formats, strings.ToLower(c.Format)); !flag {
		return apperror.NewInvalidArgumentError("Config.Format", c.Format)
	}
	return nil
}

func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.WorkDir, "work-dir", c.WorkDir, "directory under which manifest filepaths are rooted")
	fs.IntVarP(&c.Concurrency, "concurrency", "c", c.Concurrency, "number of DRS URIs resolved at once, 1 for sequential")
	fs.StringVar(&c.Format, "format", c.Format, "manifest format, getm or tnu")
}
