package domain

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
)

func TestDirectory_Route(t *testing.T) {
	tests := []struct {
		name         string
		extra        []ProviderRule
		uri          string
		expectHost   string
		expectAuth   string
		expectErr    bool
		expectedCode apperror.ErrorCode
	}{
		{
			name:       "biodata catalyst",
			uri:        "drs://dg.4503:abc123",
			expectHost: "gen3.biodatacatalyst.nhlbi.nih.gov",
			expectAuth: "fence",
		},
		{
			name:       "anvil",
			uri:        "drs://dg.ANV0:dg.ANV0/0db6577e-57bd-48a1-93c6-327c292bcb6b",
			expectHost: "gen3.theanvil.io",
			expectAuth: "anvil",
		},
		{
			name:       "crdc",
			uri:        "drs://dg.4DFC:ddacaa74-97a9-4a0e-aa36-3e65fc8382d5",
			expectHost: "nci-crdc.datacommons.io",
			expectAuth: "dcf-fence",
		},
		{
			name:         "unknown prefix",
			uri:          "drs://dg.XXXX:abc",
			expectErr:    true,
			expectedCode: apperror.ErrUnsupportedProvider,
		},
		{
			name:         "not a drs uri",
			uri:          "gs://bucket/key",
			expectErr:    true,
			expectedCode: apperror.ErrInvalidArgument,
		},
		{
			name:         "empty uri",
			uri:          "",
			expectErr:    true,
			expectedCode: apperror.ErrInvalidArgument,
		},
		{
			name: "extra rule",
			extra: []ProviderRule{{
				Prefix: "drs://dg.TEST",
				Route:  ProviderRoute{MetadataHost: "localhost:8080", AccessType: consts.AccessTypeHTTPS, AuthProvider: "test"},
			}},
			uri:        "drs://dg.TEST:obj",
			expectHost: "localhost:8080",
			expectAuth: "test",
		},
		{
			name: "extra rule cannot shadow built-in",
			extra: []ProviderRule{{
				Prefix: "drs://dg.4503",
				Route:  ProviderRoute{MetadataHost: "evil.example.com", AccessType: consts.AccessTypeGS, AuthProvider: "evil"},
			}},
			uri:        "drs://dg.4503:abc",
			expectHost: "gen3.biodatacatalyst.nhlbi.nih.gov",
			expectAuth: "fence",
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			route, err := NewDirectory(tc.extra...).Route(tc.uri)
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(apperror.IsCode(err, tc.expectedCode), convey.ShouldBeTrue)
				convey.So(route, convey.ShouldBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
				convey.So(route.MetadataHost, convey.ShouldEqual, tc.expectHost)
				convey.So(route.AuthProvider, convey.ShouldEqual, tc.expectAuth)
			}
		})
	}
}

func TestDirectory_RouteIsStable(t *testing.T) {
	convey.Convey("repeated lookups return equal routes", t, func() {
		d := NewDirectory()
		first, err := d.Route("drs://dg.ANV0:x")
		convey.So(err, convey.ShouldBeNil)
		first.MetadataHost = "mutated"

		second, err := d.Route("drs://dg.ANV0:x")
		convey.So(err, convey.ShouldBeNil)
		convey.So(second.MetadataHost, convey.ShouldEqual, "gen3.theanvil.io")
		convey.So(second.AccessType, convey.ShouldEqual, consts.AccessTypeGS)
	})
}

func TestProviderRuleParam_ToRule(t *testing.T) {
	tests := []struct {
		name      string
		param     ProviderRuleParam
		expectErr bool
	}{
		{
			name:  "valid",
			param: ProviderRuleParam{Prefix: "drs://dg.TEST", MetadataHost: "h", AccessType: "HTTPS", AuthProvider: "p"},
		},
		{
			name:      "prefix without scheme",
			param:     ProviderRuleParam{Prefix: "dg.TEST", MetadataHost: "h", AccessType: "gs", AuthProvider: "p"},
			expectErr: true,
		},
		{
			name:      "bare scheme",
			param:     ProviderRuleParam{Prefix: "drs://", MetadataHost: "h", AccessType: "gs", AuthProvider: "p"},
			expectErr: true,
		},
		{
			name:      "missing host",
			param:     ProviderRuleParam{Prefix: "drs://dg.TEST", AccessType: "gs", AuthProvider: "p"},
			expectErr: true,
		},
		{
			name:      "missing access type",
			param:     ProviderRuleParam{Prefix: "drs://dg.TEST", MetadataHost: "h", AuthProvider: "p"},
			expectErr: true,
		},
		{
			name:      "missing auth provider",
			param:     ProviderRuleParam{Prefix: "drs://dg.TEST", MetadataHost: "h", AccessType: "gs"},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			rule, err := tc.param.ToRule()
			if tc.expectErr {
				convey.So(apperror.IsCode(err, apperror.ErrInvalidArgument), convey.ShouldBeTrue)
			} else {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rule.Route.AccessType, convey.ShouldEqual, consts.AccessTypeHTTPS)
			}
		})
	}
}
