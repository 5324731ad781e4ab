package retry

import (
	"context"
	"errors"
	"net"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/GBA-BI/drs-manifest/pkg/log"
)

// DownloadRetry retries fn up to attempts times on transient network errors.
// attempts <= 1 runs fn exactly once.
func DownloadRetry(ctx context.Context, logger log.Logger, attempts uint, fn func() error) error {
	if attempts <= 1 {
		return fn()
	}
	return retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.RetryIf(isTransientError),
		retry.OnRetry(func(n uint, err error) {
			logger.Warnf("retry %d times with err %v", n, err)
		}),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.Delay(time.Second),
		retry.MaxDelay(time.Minute),
		retry.MaxJitter(time.Second*5),
		retry.LastErrorOnly(true),
	)
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EIO) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
