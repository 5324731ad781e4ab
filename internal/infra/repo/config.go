package repo

import (
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/GBA-BI/drs-manifest/internal/domain"
	"github.com/GBA-BI/drs-manifest/pkg/bond"
	"github.com/GBA-BI/drs-manifest/pkg/drs"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/identity"
	utilspath "github.com/GBA-BI/drs-manifest/pkg/utils/path"
	"github.com/GBA-BI/drs-manifest/pkg/viper"
)

type Config struct {
	ProvidersFile string `env:"DRS_PROVIDERS_FILE"`

	S3ConfigPath         string `env:"S3SDK_CONFIG_FILE"`
	ExpirationConfigPath string `env:"AWS_CREDENTIALS_EXPIRED_TIME_FILE"`
	S3SecretPath         string `env:"AWS_SHARED_CREDENTIALS_FILE"`

	// zero means consts.DefaultCredentialExpiryWindow
	CredentialExpiryWindow time.Duration `env:"AWS_CREDENTIALS_EXPIRY_WINDOW"`

	// bytes per second, 0 means unlimited
	MaxBandwidth  int64 `env:"LOCALIZE_MAX_BANDWIDTH"`
	RetryAttempts int   `env:"LOCALIZE_RETRY_ATTEMPTS"`

	DRS      *drs.Config
	Bond     *bond.Config
	Identity *identity.Config
}

func NewConfig() *Config {
	return &Config{
		RetryAttempts: 1,
		DRS:           &drs.Config{},
		Bond:          bond.NewConfig(),
		Identity:      identity.NewConfig(),
	}
}

func (c *Config) Validate() error {
	if c.MaxBandwidth < 0 {
		return apperror.NewInvalidArgumentError("repo.Config.MaxBandwidth", "negative")
	}
	if c.CredentialExpiryWindow < 0 {
		return apperror.NewInvalidArgumentError("repo.Config.CredentialExpiryWindow", c.CredentialExpiryWindow.String())
	}
	if c.RetryAttempts < 1 {
		return apperror.NewInvalidArgumentError("repo.Config.RetryAttempts", strconv.Itoa(c.RetryAttempts))
	}
	if err := c.Bond.Validate(); err != nil {
		return err
	}
	if err := c.Identity.Validate(); err != nil {
		return err
	}
	if c.ProvidersFile != "" {
		exist, err := utilspath.FileExists(c.ProvidersFile)
		if err != nil {
			return apperror.NewInternalError(err)
		}
		if !exist {
			return apperror.NewNotFoundError("providers file", c.ProvidersFile)
		}
	}
	return nil
}

func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ProvidersFile, "providers-file", c.ProvidersFile, "yaml/json file with extra DRS provider rules under key 'providers'")
	fs.StringSliceVar(&c.DRS.InsecureDomains, "insecure-domains", c.DRS.InsecureDomains, "DRS hosts contacted over plain http")
	fs.StringVar(&c.Bond.Host, "bond-host", c.Bond.Host, "Bond credential broker host")
	fs.StringVar(&c.Identity.Command, "identity-command", c.Identity.Command, "shell command printing the identity token")
}

// AddLocalizeFlags registers the flags only the localize command reads.
func (c *Config) AddLocalizeFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&c.MaxBandwidth, "max-bandwidth", c.MaxBandwidth, "download bandwidth limit in bytes per second, 0 for unlimited")
	fs.IntVar(&c.RetryAttempts, "retry-attempts", c.RetryAttempts, "download attempts per entry on transient network errors")
	fs.StringVar(&c.S3ConfigPath, "s3-config", c.S3ConfigPath, "ini file holding endpoint and region for s3:// urls")
	fs.StringVar(&c.S3SecretPath, "s3-credentials", c.S3SecretPath, "ini file holding the s3 access key pair")
	fs.StringVar(&c.ExpirationConfigPath, "s3-credentials-expiration", c.ExpirationConfigPath, "file holding the RFC3339 expiration of the s3 credentials, enables refreshing them")
	fs.DurationVar(&c.CredentialExpiryWindow, "s3-credentials-expiry-window", c.CredentialExpiryWindow, "refresh s3 credentials this long before they expire")
}

// LoadProviderRules reads the extra provider rules of cfg.ProvidersFile,
// returning none when no file is configured.
func LoadProviderRules(cfg *Config) ([]domain.ProviderRule, error) {
	if cfg == nil || cfg.ProvidersFile == "" {
		return nil, nil
	}
	var params []*domain.ProviderRuleParam
	if err := viper.SetConfigFromFile(cfg.ProvidersFile, "providers", &params); err != nil {
		return nil, apperror.NewInternalError(err)
	}
	rules := make([]domain.ProviderRule, 0, len(params))
	for _, param := range params {
		rule, err := param.ToRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
