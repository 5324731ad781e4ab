package application

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/GBA-BI/drs-manifest/internal/domain"
	"github.com/GBA-BI/drs-manifest/pkg/consts"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/log"
)

type CreateManifestCmd struct {
	concurrency int
	format      consts.ManifestFormat

	resolver     domain.Resolver
	entryFactory domain.ManifestEntryFactory
	manifestRepo domain.ManifestRepo

	out    io.Writer
	logger log.Logger
}

func NewCreateManifestCmd(c *Config, resolver domain.Resolver, manifestRepo domain.ManifestRepo, out io.Writer, logger log.Logger) (*CreateManifestCmd, error) {
	if c == nil {
		return nil, apperror.NewInternalError(fmt.Errorf("nil config of application create"))
	}
	return &CreateManifestCmd{
		concurrency:  c.Concurrency,
		format:       consts.ManifestFormat(strings.ToLower(c.Format)),
		resolver:     resolver,
		entryFactory: domain.NewManifestEntryFactory(c.WorkDir),
		manifestRepo: manifestRepo,
		out:          out,
		logger:       logger,
	}, nil
}

// Create resolves every uri and writes the manifest at path. Nothing is
// written unless every uri resolves.
func (c *CreateManifestCmd) Create(ctx context.Context, path string, uris []string) error {
	fmt.Fprintf(c.out, "Manifest filename: %s\n", path)
	fmt.Fprintf(c.out, "DRS URIs: %s\n", strings.Join(uris, " "))

	var content interface{}
	if c.format == consts.ManifestFormatTNU {
		legacy := make([]*domain.LegacyEntry, 0, len(uris))
		for _, uri := range uris {
			if err := domain.ValidateDRSURI(uri); err != nil {
				return err
			}
			legacy = append(legacy, domain.NewLegacyEntry(uri))
		}
		content = legacy
	} else {
		entries, err := c.resolveAll(ctx, uris)
		if err != nil {
			return err
		}
		content = entries
	}

	if err := c.manifestRepo.Write(ctx, path, content); err != nil {
		return err
	}
	return c.print(content)
}

// resolveAll runs at most c.concurrency resolutions at once. Each worker
// owns slot i, so the manifest keeps input order whatever finishes first.
// The first failure cancels the rest.
func (c *CreateManifestCmd) resolveAll(ctx context.Context, uris []string) ([]*domain.ManifestEntry, error) {
	c.logger.Infof("resolving %d DRS URIs with concurrency %d", len(uris), c.concurrency)
	entries := make([]*domain.ManifestEntry, len(uris))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.concurrency)
	for i, uri := range uris {
		i, uri := i, uri
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			resolved, err := c.resolver.Resolve(egCtx, uri)
			if err != nil {
				return err
			}
			entry, err := c.entryFactory.New(uri, resolved)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *CreateManifestCmd) print(content interface{}) error {
	data, err := json.MarshalIndent(content, "", "    ")
	if err != nil {
		return apperror.NewInternalError(err)
	}
	fmt.Fprintf(c.out, "Manifest content:\n%s\n", data)
	if entries, ok := content.([]*domain.ManifestEntry); ok && len(entries) > 0 {
		fmt.Fprintf(c.out, "%s\n", summaryTable(entries))
	}
	return nil
}
