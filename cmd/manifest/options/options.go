package options

import (
	"github.com/spf13/pflag"

	"github.com/GBA-BI/drs-manifest/internal/application"
	"github.com/GBA-BI/drs-manifest/internal/infra/repo"
	"github.com/GBA-BI/drs-manifest/pkg/log"
	"github.com/GBA-BI/drs-manifest/pkg/viper"
)

type Options struct {
	Log        *log.Config
	App        *application.Config
	RepoConfig *repo.Config
}

func NewOptions() *Options {
	return &Options{
		Log:        log.NewConfig(),
		App:        application.NewConfig(),
		RepoConfig: repo.NewConfig(),
	}
}

func (o *Options) Validate() error {
	if err := o.Log.Validate(); err != nil {
		return err
	}
	if err := o.App.Validate(); err != nil {
		return err
	}
	if err := o.RepoConfig.Validate(); err != nil {
		return err
	}
	return nil
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.Log.AddFlags(fs)
	o.App.AddFlags(fs)
	o.RepoConfig.AddFlags(fs)
}

func NewFromENV() *Options {
	opt := NewOptions()
	viper.SetConfigFromEnv(opt)
	return opt
}
