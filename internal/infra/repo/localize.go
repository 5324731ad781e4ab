package repo

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/GBA-BI/drs-manifest/internal/domain"
	"github.com/GBA-BI/drs-manifest/pkg/checker"
	"github.com/GBA-BI/drs-manifest/pkg/checker/md5"
	"github.com/GBA-BI/drs-manifest/pkg/consts"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/log"
	"github.com/GBA-BI/drs-manifest/pkg/transput"
	"github.com/GBA-BI/drs-manifest/pkg/transput/http"
	"github.com/GBA-BI/drs-manifest/pkg/transput/s3"
	utilspath "github.com/GBA-BI/drs-manifest/pkg/utils/path"
	"github.com/GBA-BI/drs-manifest/pkg/utils/retry"
	"github.com/GBA-BI/drs-manifest/pkg/viper"
)

func NewLocalizerRepo(cfg *Config, logger log.Logger) (domain.Localizer, error) {
	if cfg == nil {
		return nil, apperror.NewInvalidArgumentError("repo.Config", "")
	}
	return &localizerRepo{
		transputFactory: newTransputFactory(cfg),
		newChecker:      md5.NewMD5Checker,
		attempts:        uint(cfg.RetryAttempts),
		logger:          logger,
	}, nil
}

type localizerRepo struct {
	transputFactory *transputFactory
	newChecker      func(checksum string) checker.Checker

	attempts uint

	logger log.Logger
}

func (r *localizerRepo) Localize(ctx context.Context, entry *domain.ManifestEntry) error {
	if !strings.EqualFold(entry.ChecksumAlgorithm, consts.CheckerTypeMD5) {
		return apperror.NewInvalidArgumentError("checksum-algorithm", entry.ChecksumAlgorithm)
	}
	fileChecker := r.newChecker(entry.Checksum)

	if r.checkFinished(entry, fileChecker) {
		r.logger.Infof("already localized %s to %s", entry.DRSURI, entry.Filepath)
		return nil
	}

	trans, err := r.transputFactory.NewTransput(entry.URL)
	if err != nil {
		return err
	}

	startTime := time.Now()
	r.logger.Infof("start downloading %s to %s", entry.DRSURI, entry.Filepath)
	if err := retry.DownloadRetry(ctx, r.logger, r.attempts, func() error {
		return trans.DownloadFile(ctx, entry.Filepath, entry.URL)
	}); err != nil {
		return apperror.NewInternalError(fmt.Errorf("failed to download %s: %w", entry.DRSURI, err))
	}
	r.logger.Debugf("download of %s took %s", entry.DRSURI, time.Since(startTime).String())

	ok, err := fileChecker.Check(entry.Filepath)
	if err != nil {
		return apperror.NewInternalError(err)
	}
	if !ok {
		if err := os.Remove(entry.Filepath); err != nil {
			r.logger.Warnf("failed to remove corrupted file %s: %v", entry.Filepath, err)
		}
		return apperror.NewInternalError(fmt.Errorf("md5 of %s does not match %s", entry.Filepath, entry.Checksum))
	}
	r.logger.Infof("finish downloading %s to %s", entry.DRSURI, entry.Filepath)
	return nil
}

// checkFinished reports whether filepath already holds the expected content.
func (r *localizerRepo) checkFinished(entry *domain.ManifestEntry, fileChecker checker.Checker) bool {
	exist, err := utilspath.FileExists(entry.Filepath)
	if err != nil || !exist {
		return false
	}
	ok, err := fileChecker.Check(entry.Filepath)
	if err != nil {
		r.logger.Debugf("Unable to check existing file %s: %v", entry.Filepath, err)
		return false
	}
	return ok
}

func newTransputFactory(cfg *Config) *transputFactory {
	return &transputFactory{
		s3ConfigPath:         cfg.S3ConfigPath,
		expirationConfigPath: cfg.ExpirationConfigPath,
		expiryWindow:         cfg.CredentialExpiryWindow,
		s3SecretPath:         cfg.S3SecretPath,
		maxBandwidth:         cfg.MaxBandwidth,
		transputMap:          sync.Map{},
	}
}

type transputFactory struct {
	s3ConfigPath         string
	expirationConfigPath string
	expiryWindow         time.Duration
	s3SecretPath         string
	maxBandwidth         int64
	transputMap          sync.Map
}

// NewTransput returns the shared transput of the url scheme.
func (t *transputFactory) NewTransput(rawURL string) (transput.Transput, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, apperror.NewInvalidArgumentError("url", rawURL)
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme == "http" {
		scheme = "https"
	}
	if trans, ok := t.transputMap.Load(scheme); ok {
		return trans.(transput.Transput), nil
	}

	var newTrans transput.Transput
	switch scheme {
	case "https":
		newTrans, err = http.NewHTTPTransput(&http.Config{MaxBandwidth: t.maxBandwidth})
	case "s3":
		s3SDKConfig := &transput.S3SDKConfig{}
		if t.s3ConfigPath != "" {
			if err := viper.SetConfigFromFileINI(t.s3ConfigPath, "", s3SDKConfig); err != nil {
				return nil, apperror.NewInternalError(err)
			}
		}
		if t.maxBandwidth > 0 {
			s3SDKConfig.MaxBandwidth = t.maxBandwidth
		}
		newTrans, err = s3.NewS3Transput(&s3.Config{
			CredentialFilePath: t.s3SecretPath,
			ExpirationFilePath: t.expirationConfigPath,
			ExpiryWindow:       t.expiryWindow,

			S3SDKConfig: *s3SDKConfig,
		})
	default:
		return nil, apperror.NewInvalidArgumentError("url scheme", parsed.Scheme)
	}
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	actual, _ := t.transputMap.LoadOrStore(scheme, newTrans)
	return actual.(transput.Transput), nil
}
