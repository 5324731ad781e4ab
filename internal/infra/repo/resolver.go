package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/GBA-BI/drs-manifest/internal/domain"
	"github.com/GBA-BI/drs-manifest/pkg/bond"
	"github.com/GBA-BI/drs-manifest/pkg/consts"
	"github.com/GBA-BI/drs-manifest/pkg/drs"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/identity"
	"github.com/GBA-BI/drs-manifest/pkg/log"
	utilspath "github.com/GBA-BI/drs-manifest/pkg/utils/path"
)

// NewResolverRepo wires the provider directory, DRS client, Bond broker and
// a process wide cached identity source from cfg.
func NewResolverRepo(cfg *Config, logger log.Logger) (*ResolverRepo, error) {
	if cfg == nil {
		return nil, apperror.NewInvalidArgumentError("repo.Config", "")
	}
	rules, err := LoadProviderRules(cfg)
	if err != nil {
		return nil, err
	}

	client := &http.Client{}
	drsClient, err := drs.NewDRSClient(cfg.DRS, client, logger)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	broker, err := bond.NewBroker(cfg.Bond, client, logger)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	source, err := identity.NewCommandSource(cfg.Identity, logger)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return NewResolver(domain.NewDirectory(rules...), drsClient, broker, identity.NewCachedSource(source), logger), nil
}

func NewResolver(directory *domain.Directory, drsClient drs.Client, broker bond.Broker, identitySource identity.Source, logger log.Logger) *ResolverRepo {
	return &ResolverRepo{
		directory:      directory,
		drsClient:      drsClient,
		broker:         broker,
		identitySource: identitySource,
		logger:         logger,
	}
}

// ResolverRepo resolves DRS URIs one network step at a time. It holds no
// per URI state, so one instance serves every worker.
type ResolverRepo struct {
	directory      *domain.Directory
	drsClient      drs.Client
	broker         bond.Broker
	identitySource identity.Source

	logger log.Logger
}

func (r *ResolverRepo) Resolve(ctx context.Context, uri string) (*domain.ResolvedRecord, error) {
	route, err := r.directory.Route(uri)
	if err != nil {
		return nil, err
	}
	state := domain.StateRouted
	r.logState(uri, state)

	objectID := domain.ObjectIDOf(uri)
	object, err := r.drsClient.GetObject(ctx, route.MetadataHost, objectID)
	if err != nil {
		return nil, r.fail(uri, state, err)
	}
	state = domain.StateMetadataFetched
	r.logState(uri, state)

	method, ok := object.SelectAccessMethod(string(route.AccessType))
	if !ok || method.AccessID == "" {
		return nil, r.fail(uri, state, apperror.NewNoMatchingAccessMethodError(uri, string(route.AccessType)))
	}
	state = domain.StateAccessMethodSelected
	r.logState(uri, state)

	accessToken, serviceAccountKey, err := r.exchange(ctx, route.AuthProvider)
	if err != nil {
		return nil, r.fail(uri, state, err)
	}
	state = domain.StateCredentialsExchanged
	r.logState(uri, state)

	grant, err := r.drsClient.GetAccessURL(ctx, route.MetadataHost, objectID, method.AccessID, accessToken)
	if err != nil {
		return nil, r.fail(uri, state, err)
	}
	state = domain.StateAccessGranted
	r.logState(uri, state)

	record := &domain.ResolvedRecord{
		URI:               uri,
		Metadata:          object,
		AccessGrant:       grant,
		AuthProvider:      route.AuthProvider,
		ServiceAccountKey: serviceAccountKey,
		BucketURI:         object.FirstURLWithPrefix(consts.GSPrefix),
		FileName:          utilspath.BaseName(grant.URL),
	}
	r.logState(uri, domain.StateResolved)
	return record, nil
}

// ServiceAccountKey fetches the provider service account key of uri without
// touching the DRS server.
func (r *ResolverRepo) ServiceAccountKey(ctx context.Context, uri string) (json.RawMessage, error) {
	route, err := r.directory.Route(uri)
	if err != nil {
		return nil, err
	}
	identityToken, err := r.identitySource.Token(ctx)
	if err != nil {
		return nil, err
	}
	return r.broker.ServiceAccountKey(ctx, route.AuthProvider, identityToken)
}

// exchange fetches the access token and the service account key concurrently.
func (r *ResolverRepo) exchange(ctx context.Context, provider string) (string, json.RawMessage, error) {
	identityToken, err := r.identitySource.Token(ctx)
	if err != nil {
		return "", nil, err
	}

	var (
		accessToken       string
		serviceAccountKey json.RawMessage
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		token, err := r.broker.AccessToken(egCtx, provider, identityToken)
		if err != nil {
			return err
		}
		accessToken = token
		return nil
	})
	eg.Go(func() error {
		key, err := r.broker.ServiceAccountKey(egCtx, provider, identityToken)
		if err != nil {
			return err
		}
		serviceAccountKey = key
		return nil
	})
	if err := eg.Wait(); err != nil {
		return "", nil, err
	}
	return accessToken, serviceAccountKey, nil
}

func (r *ResolverRepo) logState(uri string, state domain.ResolutionState) {
	r.logger.Debugf("%s: %s", uri, state)
}

func (r *ResolverRepo) fail(uri string, state domain.ResolutionState, err error) error {
	r.logger.Errorf("%s failed after %s: %v", uri, state, err)
	return fmt.Errorf("resolve %s: %w", uri, err)
}

var (
	_ domain.Resolver                 = (*ResolverRepo)(nil)
	_ domain.ServiceAccountKeyFetcher = (*ResolverRepo)(nil)
)
