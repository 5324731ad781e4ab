// Package mock holds gomock mocks for the interfaces the resolver and commands depend on.
package mock

//go:generate mockgen -destination=mock_identity.go -package=mock github.com/GBA-BI/drs-manifest/pkg/identity Source
//go:generate mockgen -destination=mock_bond.go -package=mock github.com/GBA-BI/drs-manifest/pkg/bond Broker
//go:generate mockgen -destination=mock_drs.go -package=mock github.com/GBA-BI/drs-manifest/pkg/drs Client
//go:generate mockgen -destination=mock_checker.go -package=mock github.com/GBA-BI/drs-manifest/pkg/checker Checker
//go:generate mockgen -destination=mock_resolver.go -package=mock github.com/GBA-BI/drs-manifest/internal/domain Resolver,ServiceAccountKeyFetcher
//go:generate mockgen -destination=mock_manifest.go -package=mock github.com/GBA-BI/drs-manifest/internal/domain ManifestRepo
//go:generate mockgen -destination=mock_transput.go -package=mock github.com/GBA-BI/drs-manifest/pkg/transput Transput
//go:generate mockgen -destination=mock_localizer.go -package=mock github.com/GBA-BI/drs-manifest/internal/domain Localizer
