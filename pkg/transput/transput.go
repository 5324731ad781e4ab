package transput

import (
	"context"
)

// Transput fetches the object behind a manifest url to a local path.
type Transput interface {
	DownloadFile(ctx context.Context, local, remote string) error
}
