package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	utilspath "github.com/GBA-BI/drs-manifest/pkg/utils/path"
)

// ManifestEntry is one download instruction of a getm manifest. file_size,
// drs_uri and gs_uri are diagnostics the downloader ignores.
type ManifestEntry struct {
	URL                  string          `json:"url"`
	Checksum             string          `json:"checksum"`
	ChecksumAlgorithm    string          `json:"checksum-algorithm"`
	Filepath             string          `json:"filepath"`
	FileSize             int64           `json:"file_size"`
	DRSURI               string          `json:"drs_uri"`
	GSURI                string          `json:"gs_uri"`
	GoogleServiceAccount json.RawMessage `json:"google_service_account,omitempty"`
}

// LegacyEntry is the terra-notebook-utils manifest format.
type LegacyEntry struct {
	DRSURI string `json:"drs_uri"`
	Dst    string `json:"dst"`
}

func NewLegacyEntry(uri string) *LegacyEntry {
	return &LegacyEntry{
		DRSURI: uri,
		Dst:    uuid.NewString(),
	}
}

// Factory // hackable
type CreateManifestEntryParam struct {
	URL               string
	Checksum          string
	ChecksumAlgorithm string
	Filepath          string
	FileSize          int64
	DRSURI            string
	GSURI             string
}

type ManifestEntryFactory interface {
	New(uri string, resolved *ResolvedRecord) (*ManifestEntry, error)
}

// NewManifestEntryFactory roots every entry's filepath under workDir.
func NewManifestEntryFactory(workDir string) ManifestEntryFactory {
	return &manifestEntryFactoryImpl{workDir: workDir}
}

type manifestEntryFactoryImpl struct {
	workDir string
}

func (i *manifestEntryFactoryImpl) New(uri string, resolved *ResolvedRecord) (*ManifestEntry, error) {
	if resolved == nil || resolved.Metadata == nil || resolved.AccessGrant == nil || resolved.AccessGrant.URL == "" {
		return nil, apperror.NewInternalError(fmt.Errorf("incomplete resolution of %s", uri))
	}

	checksum, ok := resolved.Metadata.ChecksumMap()[consts.CheckerTypeMD5]
	if !ok || checksum == "" {
		return nil, apperror.NewMissingChecksumError(uri, consts.CheckerTypeMD5)
	}

	path := i.filepath(uri, resolved)
	if err := utilspath.EnsureParentDir(path); err != nil {
		return nil, apperror.NewInternalError(fmt.Errorf("failed to create directory for %s: %w", path, err))
	}

	param := &CreateManifestEntryParam{
		URL:               resolved.AccessGrant.URL,
		Checksum:          checksum,
		ChecksumAlgorithm: consts.CheckerTypeMD5,
		Filepath:          path,
		FileSize:          resolved.Metadata.Size,
		DRSURI:            uri,
		GSURI:             resolved.BucketURI,
	}
	entry := &ManifestEntry{}
	if err := copier.Copy(entry, param); err != nil {
		return nil, apperror.NewInternalError(err)
	}
	return entry, nil
}

func (i *manifestEntryFactoryImpl) filepath(uri string, resolved *ResolvedRecord) string {
	fileName := resolved.FileName
	if fileName == "" {
		fileName = utilspath.BaseName(resolved.AccessGrant.URL)
	}
	if fileName == "" {
		fileName = filepath.Base(resolved.Metadata.Name)
	}
	if fileName == "" || fileName == "." || fileName == "/" {
		fileName = ObjectIDOf(uri)
	}
	return filepath.Join(i.workDir, LocalDirName(uri), fileName)
}

// repo
type ManifestRepo interface {
	Write(ctx context.Context, path string, content interface{}) error
	Read(ctx context.Context, path string) ([]*ManifestEntry, error)
}

// Localizer downloads the object of an entry to its filepath and verifies it.
type Localizer interface {
	Localize(ctx context.Context, entry *ManifestEntry) error
}
