package drs

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
	utilsstrings "github.com/GBA-BI/drs-manifest/pkg/utils/strings"
)

// Client talks to the GA4GH DRS v1 endpoints of a metadata host.
type Client interface {
	GetObject(ctx context.Context, host, objectID string) (*Object, error)
	GetAccessURL(ctx context.Context, host, objectID, accessID, accessToken string) (*AccessURL, error)
}

type Config struct {
	// InsecureDomains are contacted over plain http.
	InsecureDomains []string `env:"DRS_INSECURE_DOMAINS"`
}

func NewDRSClient(cfg *Config, client *http.Client, logger log.Logger) (Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config of drs client")
	}
	if client == nil {
		client = &http.Client{}
	}
	return &drsClient{
		insecureDomains: cfg.InsecureDomains,
		client:          client,
		logger:          logger,
	}, nil
}

type drsClient struct {
	insecureDomains []string

	client *http.Client
	logger log.Logger
}

func (d *drsClient) GetObject(ctx context.Context, host, objectID string) (*Object, error) {
	requestURI := d.objectURL(host, objectID)
	body, statusCode, err := d.get(ctx, requestURI, "")
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	if statusCode < 200 || statusCode >= 300 {
		d.logger.Errorf("DRS GetObject got status code: %d, body: %s", statusCode, body)
		return nil, apperror.NewMetadataFetchError(requestURI, statusCode, string(body))
	}

	var object Object
	if err := json.Unmarshal(body, &object); err != nil {
		return nil, apperror.NewInternalError(fmt.Errorf("failed to decode DRS object from %s: %w", requestURI, err))
	}
	return &object, nil
}

func (d *drsClient) GetAccessURL(ctx context.Context, host, objectID, accessID, accessToken string) (*AccessURL, error) {
	requestURI := fmt.Sprintf("%s/access/%s", d.objectURL(host, objectID), url.PathEscape(accessID))
	body, statusCode, err := d.get(ctx, requestURI, accessToken)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	if statusCode < 200 || statusCode >= 300 {
		d.logger.Errorf("DRS GetAccess got status code: %d, body: %s", statusCode, body)
		return nil, apperror.NewAccessGrantError(requestURI, statusCode, string(body))
	}

	var accessURL AccessURL
	if err := json.Unmarshal(body, &accessURL); err != nil {
		return nil, apperror.NewInternalError(fmt.Errorf("failed to decode DRS access url from %s: %w", requestURI, err))
	}
	if accessURL.URL == "" {
		return nil, apperror.NewAccessGrantError(requestURI, statusCode, string(body))
	}
	return &accessURL, nil
}

func (d *drsClient) objectURL(host, objectID string) string {
	scheme := "https"
	if utilsstrings.Contains(d.insecureDomains, host) {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s%s/%s", scheme, host, consts.DRSObjectsPath, url.PathEscape(objectID))
}

func (d *drsClient) get(ctx context.Context, requestURI, bearer string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURI, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	d.logger.Infof("Request URL: %s", requestURI)
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
