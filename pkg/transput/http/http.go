package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
	"github.com/GBA-BI/drs-manifest/pkg/transput"
	utilspath "github.com/GBA-BI/drs-manifest/pkg/utils/path"
)

type Config struct {
	Headers map[string]string
	// bytes per second, 0 means unlimited
	MaxBandwidth int64
}

func NewHTTPTransput(cfg *Config) (transput.Transput, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config of http transput")
	}
	client := &http.Client{}
	if cfg.MaxBandwidth > 0 {
		client, _ = transput.NewRateLimitedClient(cfg.MaxBandwidth)
	}
	return &httpTransput{
		client:  client,
		headers: cfg.Headers,
	}, nil
}

type httpTransput struct {
	headers map[string]string

	client *http.Client
}

func (h *httpTransput) DownloadFile(ctx context.Context, local, remote string) error {
	if err := utilspath.EnsureParentDir(local); err != nil {
		return fmt.Errorf("failed to mkdir: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remote, nil)
	if err != nil {
		return err
	}

	for k, v := range h.headers {
		req.Header.Set(k, v)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download file error with status code: %d", resp.StatusCode)
	}

	out, err := os.OpenFile(local, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(consts.DefaultFileMode))
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, resp.Body); err != nil {
		return err
	}

	return out.Sync()
}
