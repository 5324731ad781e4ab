package manifest

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/GBA-BI/drs-manifest/cmd/manifest/options"
	"github.com/GBA-BI/drs-manifest/internal/application"
	"github.com/GBA-BI/drs-manifest/internal/infra/repo"
	"github.com/GBA-BI/drs-manifest/pkg/log"
	"github.com/GBA-BI/drs-manifest/pkg/version"
)

func newManifestCommand(ctx context.Context, opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "drs-manifest <manifest_filename> <drs_uri> [<drs_uri> ...]",
		Short: "resolve DRS URIs into a getm manifest",
		Long: `drs-manifest resolves every DRS URI to a signed download url through the
provider's DRS server and the Bond credential broker, and writes a getm
manifest with url, md5 checksum and destination filepath of each object.
`,
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if version.Requested() {
				return nil
			}
			return cobra.MinimumNArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setup(opts)
			if err != nil {
				return err
			}
			defer log.Close()

			if err := runCreate(ctx, opts, logger, args[0], args[1:]); err != nil {
				logger.Errorf("run error: %v", err)
				return err
			}
			return nil
		},
	}
}

func newLocalizeCommand(ctx context.Context, opts *options.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "localize <manifest_filename>",
		Short:        "download every manifest entry to its filepath and verify its md5",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setup(opts)
			if err != nil {
				return err
			}
			defer log.Close()

			if err := runLocalize(ctx, opts, logger, args[0]); err != nil {
				logger.Errorf("run error: %v", err)
				return err
			}
			return nil
		},
	}
	opts.RepoConfig.AddLocalizeFlags(cmd.Flags())
	return cmd
}

func newPopulateCommand(ctx context.Context, opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:          "populate-sa-key <manifest_filename>",
		Short:        "add the provider service account key to every manifest entry",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setup(opts)
			if err != nil {
				return err
			}
			defer log.Close()

			if err := runPopulate(ctx, opts, logger, args[0]); err != nil {
				logger.Errorf("run error: %v", err)
				return err
			}
			return nil
		},
	}
}

func setup(opts *options.Options) (log.Logger, error) {
	version.PrintVersionOrContinue(os.Stdout)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return log.GetLogger(opts.Log)
}

func runCreate(ctx context.Context, opts *options.Options, logger log.Logger, path string, uris []string) error {
	resolverRepo, err := repo.NewResolverRepo(opts.RepoConfig, logger)
	if err != nil {
		return err
	}
	cmd, err := application.NewCreateManifestCmd(opts.App, resolverRepo, repo.NewManifestRepo(logger), os.Stdout, logger)
	if err != nil {
		return err
	}
	return cmd.Create(ctx, path, uris)
}

func runLocalize(ctx context.Context, opts *options.Options, logger log.Logger, path string) error {
	localizerRepo, err := repo.NewLocalizerRepo(opts.RepoConfig, logger)
	if err != nil {
		return err
	}
	cmd, err := application.NewLocalizeCmd(opts.App, repo.NewManifestRepo(logger), localizerRepo, logger)
	if err != nil {
		return err
	}
	return cmd.Localize(ctx, path)
}

func runPopulate(ctx context.Context, opts *options.Options, logger log.Logger, path string) error {
	resolverRepo, err := repo.NewResolverRepo(opts.RepoConfig, logger)
	if err != nil {
		return err
	}
	cmd, err := application.NewPopulateSAKeyCmd(opts.App, repo.NewManifestRepo(logger), resolverRepo, logger)
	if err != nil {
		return err
	}
	return cmd.Populate(ctx, path)
}

func NewManifestCommand(ctx context.Context) *cobra.Command {
	opts := options.NewFromENV()

	cmd := newManifestCommand(ctx, opts)
	opts.AddFlags(cmd.PersistentFlags())
	version.AddFlags(cmd.PersistentFlags())
	cmd.AddCommand(newLocalizeCommand(ctx, opts), newPopulateCommand(ctx, opts))

	return cmd
}
