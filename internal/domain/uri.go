package domain

import (
	"strings"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
)

func ValidateDRSURI(uri string) error {
	if !strings.HasPrefix(uri, consts.DRSScheme) || len(uri) == len(consts.DRSScheme) {
		return apperror.NewInvalidArgumentError("DRS URI", uri)
	}
	return nil
}

// ObjectIDOf extracts the object id of a compact identifier (drs://dg.4503:abc)
// or of a host based URI (drs://host/abc).
func ObjectIDOf(uri string) string {
	rest := strings.TrimPrefix(uri, consts.DRSScheme)
	if i := strings.LastIndex(rest, ":"); i >= 0 {
		return rest[i+1:]
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[i+1:]
	}
	return rest
}

// LocalDirName turns a DRS URI into a single filesystem safe path element.
func LocalDirName(uri string) string {
	return strings.NewReplacer(":", "_", "/", "_").Replace(strings.TrimPrefix(uri, consts.DRSScheme))
}
