package bond

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/log"
)

// Broker exchanges a caller's identity token for provider scoped credentials.
type Broker interface {
	AccessToken(ctx context.Context, provider, identityToken string) (string, error)
	ServiceAccountKey(ctx context.Context, provider, identityToken string) (json.RawMessage, error)
}

type Config struct {
	Host   string `env:"BOND_HOST"`
	Scheme string `env:"BOND_SCHEME"`
}

func NewConfig() *Config {
	return &Config{
		Host:   consts.DefaultBondHost,
		Scheme: "https",
	}
}

func (c *Config) Validate() error {
	if c.Host == "" {
		return apperror.NewInvalidArgumentError("bond.Config.Host", c.Host)
	}
	if c.Scheme != "https" && c.Scheme != "http" {
		return apperror.NewInvalidArgumentError("bond.Config.Scheme", c.Scheme)
	}
	return nil
}

func NewBroker(cfg *Config, client *http.Client, logger log.Logger) (Broker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config of bond broker")
	}
	if client == nil {
		client = &http.Client{}
	}
	return &broker{
		baseURL: fmt.Sprintf("%s://%s%s", cfg.Scheme, cfg.Host, consts.BondLinkPath),
		client:  client,
		logger:  logger,
	}, nil
}

type broker struct {
	baseURL string

	client *http.Client
	logger log.Logger
}

type accessTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type serviceAccountKeyResponse struct {
	Data json.RawMessage `json:"data"`
}

func (b *broker) AccessToken(ctx context.Context, provider, identityToken string) (string, error) {
	var resp accessTokenResponse
	if err := b.get(ctx, b.linkURL(provider, "accesstoken"), identityToken, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (b *broker) ServiceAccountKey(ctx context.Context, provider, identityToken string) (json.RawMessage, error) {
	var resp serviceAccountKeyResponse
	if err := b.get(ctx, b.linkURL(provider, "serviceaccount/key"), identityToken, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (b *broker) linkURL(provider, resource string) string {
	return fmt.Sprintf("%s/%s/%s", b.baseURL, url.PathEscape(provider), resource)
}

func (b *broker) get(ctx context.Context, requestURI, identityToken string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURI, nil)
	if err != nil {
		return apperror.NewInternalError(err)
	}
	req.Header.Set("Authorization", "Bearer "+identityToken)
	req.Header.Set("Content-Type", "application/json")

	b.logger.Infof("Request URL: %s", requestURI)
	resp, err := b.client.Do(req)
	if err != nil {
		return apperror.NewInternalError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewInternalError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b.logger.Errorf("bond request %s got status code: %d, body: %s", requestURI, resp.StatusCode, body)
		return apperror.NewCredentialExchangeError(requestURI, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperror.NewInternalError(fmt.Errorf("failed to decode bond response from %s: %w", requestURI, err))
	}
	return nil
}
