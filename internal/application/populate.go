package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/GBA-BI/drs-manifest/internal/domain"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/log"
)

type PopulateSAKeyCmd struct {
	concurrency int

	manifestRepo domain.ManifestRepo
	keyFetcher   domain.ServiceAccountKeyFetcher

	logger log.Logger
}

func NewPopulateSAKeyCmd(c *Config, manifestRepo domain.ManifestRepo, keyFetcher domain.ServiceAccountKeyFetcher, logger log.Logger) (*PopulateSAKeyCmd, error) {
	if c == nil {
		return nil, apperror.NewInternalError(fmt.Errorf("nil config of application populate"))
	}
	return &PopulateSAKeyCmd{
		concurrency:  c.Concurrency,
		manifestRepo: manifestRepo,
		keyFetcher:   keyFetcher,
		logger:       logger,
	}, nil
}

// Populate sets google_service_account on every entry of the manifest at
// path and rewrites it in place. The manifest is left untouched on failure.
func (p *PopulateSAKeyCmd) Populate(ctx context.Context, path string) error {
	entries, err := p.manifestRepo.Read(ctx, path)
	if err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.concurrency)
	for _, entry := range entries {
		entry := entry
		eg.Go(func() error {
			if entry.DRSURI == "" {
				return apperror.NewInvalidArgumentError("drs_uri of entry", entry.Filepath)
			}
			key, err := p.keyFetcher.ServiceAccountKey(egCtx, entry.DRSURI)
			if err != nil {
				return err
			}
			entry.GoogleServiceAccount = key
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if err := p.manifestRepo.Write(ctx, path, entries); err != nil {
		return err
	}
	p.logger.Infof("populated service account keys of %d entries in %s", len(entries), path)
	return nil
}
