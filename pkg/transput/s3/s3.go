package s3

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"golang.org/x/time/rate"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
	"github.com/GBA-BI/drs-manifest/pkg/transput"
	utilspath "github.com/GBA-BI/drs-manifest/pkg/utils/path"
	utilsstrings "github.com/GBA-BI/drs-manifest/pkg/utils/strings"
	"github.com/GBA-BI/drs-manifest/pkg/viper"
)

type Config struct {
	CredentialFilePath string
	ExpirationFilePath string
	// credentials are refreshed this long before the recorded expiration
	ExpiryWindow time.Duration

	transput.S3SDKConfig
}

const rateLimitCoolDown = 5 * time.Minute

type s3Transput struct {
	downloader *s3manager.Downloader
	limiter    *rate.Limiter

	bandwidth int64

	// one transput serves every concurrent download of a localize run
	mu               sync.Mutex
	limitErrCount    int64
	lastLimitErrTime time.Time
}

func NewS3Transput(cfg *Config) (transput.Transput, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil s3 transput config")
	}

	maxBandwidth := cfg.MaxBandwidth
	if maxBandwidth <= 0 {
		maxBandwidth = consts.DefaultMaxBandwidth
	}
	httpClient, sharedLimiter := transput.NewRateLimitedClient(maxBandwidth)

	cre, err := getCre(cfg)
	if err != nil {
		return nil, err
	}

	maxRetryCount := consts.DefaultRetryCount
	if cfg.MaxRetryCount > 0 {
		maxRetryCount = int(cfg.MaxRetryCount)
	}
	var partSize int64 = consts.DefaultPartSize
	if cfg.PartSize > 0 {
		partSize = cfg.PartSize
	}
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(cfg.Region),
		Endpoint:         aws.String(cfg.Endpoint),
		Credentials:      cre,
		MaxRetries:       aws.Int(maxRetryCount),
		HTTPClient:       httpClient,
		S3ForcePathStyle: aws.Bool(cfg.Endpoint != ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 transput: %w", err)
	}

	return &s3Transput{
		downloader: s3manager.NewDownloader(sess, func(u *s3manager.Downloader) {
			u.PartSize = partSize
		}),
		limiter:   sharedLimiter,
		bandwidth: maxBandwidth,
	}, nil
}

// getCre prefers refreshable credentials when an expiration file exists.
func getCre(cfg *Config) (*credentials.Credentials, error) {
	var needRefreshCre bool
	if cfg.ExpirationFilePath != "" {
		exist, err := utilspath.FileExists(cfg.ExpirationFilePath)
		if err != nil {
			return nil, err
		}
		needRefreshCre = exist
	}

	if needRefreshCre {
		if cfg.CredentialFilePath == "" {
			return nil, fmt.Errorf("expiration file %s given without a credential file", cfg.ExpirationFilePath)
		}
		window := cfg.ExpiryWindow
		if window <= 0 {
			window = consts.DefaultCredentialExpiryWindow
		}
		return credentials.NewCredentials(NewRefreshProvider(cfg.CredentialFilePath, cfg.ExpirationFilePath, window)), nil
	}
	if cfg.CredentialFilePath == "" {
		return credentials.AnonymousCredentials, nil
	}
	sConfig := &transput.S3SecretConfig{}
	if err := viper.SetConfigFromFileINI(cfg.CredentialFilePath, "", sConfig); err != nil {
		return nil, err
	}
	return credentials.NewStaticCredentials(sConfig.AccessKey, sConfig.SecretKey, sConfig.CreToken), nil
}

func (t *s3Transput) DownloadFile(ctx context.Context, local, remote string) error {
	t.restoreRateLimit()
	if err := utilspath.EnsureParentDir(local); err != nil {
		return fmt.Errorf("failed to mkdir: %w", err)
	}
	bucketName, objectName, err := utilspath.ParseURL(remote)
	if err != nil {
		return err
	}

	file, err := os.Create(local)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	for {
		_, downloadErr := t.downloader.DownloadWithContext(ctx, file, &s3.GetObjectInput{
			Bucket: &bucketName,
			Key:    &objectName,
		})

		if downloadErr == nil {
			return nil
		}

		if !t.handleRateLimitError(downloadErr) {
			return fmt.Errorf("failed to download file from s3: %w", downloadErr)
		}
	}
}

// restoreRateLimit lifts the throttle after 5 minutes without a rate limit error.
func (t *s3Transput) restoreRateLimit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if time.Since(t.lastLimitErrTime) > rateLimitCoolDown {
		t.limitErrCount = 0
		t.updateRateLimit(t.bandwidth)
	}
}

func (t *s3Transput) updateRateLimit(newRate int64) {
	if t.limiter != nil && newRate > consts.DefaultMinBandwidth {
		t.limiter.SetLimit(rate.Limit(newRate))
	}
}

func (t *s3Transput) handleRateLimitError(err error) bool {
	var awsErr awserr.Error
	ok := errors.As(err, &awsErr)
	if !ok {
		return false
	}

	if utilsstrings.Contains(consts.ErrCodeRateLimitList, awsErr.Code()) {
		t.mu.Lock()
		t.limitErrCount++
		t.lastLimitErrTime = time.Now()
		t.updateRateLimit(t.bandwidth / (t.limitErrCount + 1))
		t.mu.Unlock()
		return true
	}

	return false
}
