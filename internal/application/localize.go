package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/GBA-BI/drs-manifest/internal/domain"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/log"
)

type LocalizeCmd struct {
	concurrency int

	manifestRepo domain.ManifestRepo
	localizer    domain.Localizer

	logger log.Logger
}

func NewLocalizeCmd(c *Config, manifestRepo domain.ManifestRepo, localizer domain.Localizer, logger log.Logger) (*LocalizeCmd, error) {
	if c == nil {
		return nil, apperror.NewInternalError(fmt.Errorf("nil config of application localize"))
	}
	return &LocalizeCmd{
		concurrency:  c.Concurrency,
		manifestRepo: manifestRepo,
		localizer:    localizer,
		logger:       logger,
	}, nil
}

// Localize downloads every entry of the manifest at path and verifies its checksum.
func (l *LocalizeCmd) Localize(ctx context.Context, path string) error {
	entries, err := l.manifestRepo.Read(ctx, path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		l.logger.Infof("manifest %s is empty, no need to download", path)
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(l.concurrency)
	for _, entry := range entries {
		entry := entry
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return l.localizer.Localize(egCtx, entry)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	l.logger.Infof("localized %d entries of %s", len(entries), path)
	return nil
}
