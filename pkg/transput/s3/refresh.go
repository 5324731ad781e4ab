package s3

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"

	"github.com/GBA-BI/drs-manifest/pkg/transput"
	"github.com/GBA-BI/drs-manifest/pkg/viper"
)

const refreshProviderName = "DRSManifestRefreshProvider"

// NewRefreshProvider re-reads the shared credentials file once the time in
// expirationFilePath, less window, has passed. Session keys rotated by the
// task runtime are picked up by downloads still in flight.
func NewRefreshProvider(credentialFilePath, expirationFilePath string, window time.Duration) credentials.Provider {
	return &refreshProvider{
		credentialFilePath: credentialFilePath,
		expirationFilePath: expirationFilePath,
		window:             window,
	}
}

type refreshProvider struct {
	credentials.Expiry

	credentialFilePath string
	expirationFilePath string
	window             time.Duration
}

func (p *refreshProvider) Retrieve() (credentials.Value, error) {
	expiration, err := readExpiration(p.expirationFilePath)
	if err != nil {
		return credentials.Value{ProviderName: refreshProviderName}, err
	}

	sConfig := &transput.S3SecretConfig{}
	if err := viper.SetConfigFromFileINI(p.credentialFilePath, "", sConfig); err != nil {
		return credentials.Value{ProviderName: refreshProviderName}, err
	}
	if sConfig.AccessKey == "" || sConfig.SecretKey == "" {
		return credentials.Value{ProviderName: refreshProviderName}, fmt.Errorf("no access key pair in %s", p.credentialFilePath)
	}

	p.SetExpiration(expiration, p.window)
	return credentials.Value{
		AccessKeyID:     sConfig.AccessKey,
		SecretAccessKey: sConfig.SecretKey,
		SessionToken:    sConfig.CreToken,
		ProviderName:    refreshProviderName,
	}, nil
}

// readExpiration accepts either a bare RFC3339 timestamp or an ini file
// carrying it under expiredTime.
func readExpiration(path string) (time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read expiration file: %w", err)
	}
	if expiration, err := time.Parse(time.RFC3339, strings.TrimSpace(string(data))); err == nil {
		return expiration, nil
	}

	eConfig := &transput.S3ExpirationConfig{}
	if err := viper.SetConfigFromFileINI(path, "", eConfig); err != nil {
		return time.Time{}, err
	}
	expiration, err := time.Parse(time.RFC3339, strings.TrimSpace(eConfig.ExpiredTime))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse expiration time of %s: %w", path, err)
	}
	return expiration, nil
}
