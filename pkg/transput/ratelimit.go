package transput

import (
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
)

// NewRateLimitedClient returns an http client whose request and response
// bodies share one limiter of maxBandwidth bytes per second. A non positive
// maxBandwidth means consts.DefaultMaxBandwidth.
func NewRateLimitedClient(maxBandwidth int64) (*http.Client, *rate.Limiter) {
	if maxBandwidth <= 0 {
		maxBandwidth = consts.DefaultMaxBandwidth
	}
	limiter := rate.NewLimiter(rate.Limit(maxBandwidth), int(maxBandwidth))
	return &http.Client{
		Transport: &rateLimitingTransport{
			upLimiter:   limiter,
			downLimiter: limiter,
			transport:   http.DefaultTransport,
		},
	}, limiter
}

type rateLimitingTransport struct {
	upLimiter   *rate.Limiter
	downLimiter *rate.Limiter
	transport   http.RoundTripper
}

func (t *rateLimitingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		req.Body = &readLimiter{
			req:     req,
			reader:  req.Body,
			limiter: t.upLimiter,
		}
	}

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	resp.Body = &readLimiter{
		req:     req,
		reader:  resp.Body,
		limiter: t.downLimiter,
	}

	return resp, nil
}

type readLimiter struct {
	req     *http.Request
	reader  io.ReadCloser
	limiter *rate.Limiter
}

func (r *readLimiter) Read(p []byte) (int, error) {
	// WaitN rejects n above the burst
	if burst := r.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := r.reader.Read(p)
	if n > 0 {
		if waitErr := r.limiter.WaitN(r.req.Context(), n); waitErr != nil {
			return n, waitErr
		}
	}
	return n, err
}

func (r *readLimiter) Close() error {
	return r.reader.Close()
}
