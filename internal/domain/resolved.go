package domain

import (
	"context"
	"encoding/json"

	"github.com/GBA-BI/drs-manifest/pkg/drs"
)

// ResolutionState tracks how far a single URI got; it only moves forward.
type ResolutionState int

const (
	StateRouted ResolutionState = iota
	StateMetadataFetched
	StateAccessMethodSelected
	StateCredentialsExchanged
	StateAccessGranted
	StateResolved
)

func (s ResolutionState) String() string {
	switch s {
	case StateRouted:
		return "ROUTED"
	case StateMetadataFetched:
		return "METADATA_FETCHED"
	case StateAccessMethodSelected:
		return "ACCESS_METHOD_SELECTED"
	case StateCredentialsExchanged:
		return "CREDENTIALS_EXCHANGED"
	case StateAccessGranted:
		return "ACCESS_GRANTED"
	case StateResolved:
		return "RESOLVED"
	default:
		return "UNKNOWN"
	}
}

type ResolvedRecord struct {
	URI               string
	Metadata          *drs.Object
	AccessGrant       *drs.AccessURL
	AuthProvider      string
	ServiceAccountKey json.RawMessage
	BucketURI         string
	// FileName is the last path element of the access grant url.
	FileName string
}

// repo
type Resolver interface {
	Resolve(ctx context.Context, uri string) (*ResolvedRecord, error)
}

type ServiceAccountKeyFetcher interface {
	ServiceAccountKey(ctx context.Context, uri string) (json.RawMessage, error)
}
