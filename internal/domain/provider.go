package domain

import (
	"strings"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
)

// ProviderRoute says where the metadata of a DRS object lives, which access
// method type to ask for and which Bond provider grants the credentials.
type ProviderRoute struct {
	MetadataHost string
	AccessType   consts.AccessType
	AuthProvider string
}

// ProviderRule routes every URI starting with Prefix.
type ProviderRule struct {
	Prefix string
	Route  ProviderRoute
}

// ProviderRuleParam is the file form of a ProviderRule.
type ProviderRuleParam struct {
	Prefix       string `mapstructure:"prefix" json:"prefix"`
	MetadataHost string `mapstructure:"metadata_host" json:"metadata_host"`
	AccessType   string `mapstructure:"access_type" json:"access_type"`
	AuthProvider string `mapstructure:"auth_provider" json:"auth_provider"`
}

// ToRule validates the param and lowercases its access type.
func (p *ProviderRuleParam) ToRule() (ProviderRule, error) {
	if !strings.HasPrefix(p.Prefix, consts.DRSScheme) || len(p.Prefix) == len(consts.DRSScheme) {
		return ProviderRule{}, apperror.NewInvalidArgumentError("ProviderRule.Prefix", p.Prefix)
	}
	if p.MetadataHost == "" {
		return ProviderRule{}, apperror.NewInvalidArgumentError("ProviderRule.MetadataHost", p.MetadataHost)
	}
	if p.AccessType == "" {
		return ProviderRule{}, apperror.NewInvalidArgumentError("ProviderRule.AccessType", p.AccessType)
	}
	if p.AuthProvider == "" {
		return ProviderRule{}, apperror.NewInvalidArgumentError("ProviderRule.AuthProvider", p.AuthProvider)
	}
	return ProviderRule{
		Prefix: p.Prefix,
		Route: ProviderRoute{
			MetadataHost: p.MetadataHost,
			AccessType:   consts.AccessType(strings.ToLower(p.AccessType)),
			AuthProvider: p.AuthProvider,
		},
	}, nil
}

// DefaultProviderRules are the built in routes of the known data commons.
func DefaultProviderRules() []ProviderRule {
	return []ProviderRule{
		{
			Prefix: "drs://dg.4503",
			Route: ProviderRoute{
				MetadataHost: "gen3.biodatacatalyst.nhlbi.nih.gov",
				AccessType:   consts.AccessTypeGS,
				AuthProvider: "fence",
			},
		},
		{
			Prefix: "drs://dg.ANV0",
			Route: ProviderRoute{
				MetadataHost: "gen3.theanvil.io",
				AccessType:   consts.AccessTypeGS,
				AuthProvider: "anvil",
			},
		},
		{
			Prefix: "drs://dg.4DFC",
			Route: ProviderRoute{
				MetadataHost: "nci-crdc.datacommons.io",
				AccessType:   consts.AccessTypeGS,
				AuthProvider: "dcf-fence",
			},
		},
	}
}

// Directory is an ordered prefix table; the first matching rule wins, so
// appended rules never change how an already routed prefix resolves.
type Directory struct {
	rules []ProviderRule
}

// NewDirectory appends extra after the default rules.
func NewDirectory(extra ...ProviderRule) *Directory {
	rules := DefaultProviderRules()
	rules = append(rules, extra...)
	return &Directory{rules: rules}
}

// Route returns the route of the first rule prefixing uri.
func (d *Directory) Route(uri string) (*ProviderRoute, error) {
	if err := ValidateDRSURI(uri); err != nil {
		return nil, err
	}
	for _, rule := range d.rules {
		if strings.HasPrefix(uri, rule.Prefix) {
			route := rule.Route
			return &route, nil
		}
	}
	return nil, apperror.NewUnsupportedProviderError(uri)
}
