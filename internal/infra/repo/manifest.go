package repo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/GBA-BI/drs-manifest/internal/domain"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/log"
	utilspath "github.com/GBA-BI/drs-manifest/pkg/utils/path"
)

const lockRetryDelay = 100 * time.Millisecond

func NewManifestRepo(logger log.Logger) domain.ManifestRepo {
	return &manifestRepo{logger: logger}
}

type manifestRepo struct {
	logger log.Logger
}

// Write replaces path with the JSON of content. Concurrent writers of the
// same path are serialized through a lock file outside the manifest
// directory and readers only ever see a complete file.
func (m *manifestRepo) Write(ctx context.Context, path string, content interface{}) error {
	data, err := marshalManifest(content)
	if err != nil {
		return apperror.NewInternalError(err)
	}
	if err := utilspath.EnsureParentDir(path); err != nil {
		return apperror.NewInternalError(err)
	}
	lockFile, err := lockPath(path)
	if err != nil {
		return apperror.NewInternalError(err)
	}

	lock := flock.New(lockFile)
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return apperror.NewInternalError(fmt.Errorf("failed to lock manifest %s: %w", path, err))
	}
	if !locked {
		return apperror.NewInternalError(fmt.Errorf("manifest %s is locked by another writer", path))
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			m.logger.Warnf("failed to unlock manifest %s: %v", path, err)
		}
	}()

	if err := writeAtomic(path, data); err != nil {
		return apperror.NewInternalError(err)
	}
	m.logger.Infof("wrote manifest %s", path)
	return nil
}

// marshalManifest indents getm manifests by 4 spaces and keeps the legacy
// tnu format on a single line.
func marshalManifest(content interface{}) ([]byte, error) {
	if _, ok := content.([]*domain.LegacyEntry); ok {
		return json.Marshal(content)
	}
	return json.MarshalIndent(content, "", "    ")
}

// lockPath keys the lock of a manifest by its absolute path under the
// system temp dir, so nothing but the manifest lands in its directory.
func lockPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(absPath))
	return filepath.Join(os.TempDir(), "drs-manifest-"+hex.EncodeToString(sum[:8])+".lock"), nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}

func (m *manifestRepo) Read(ctx context.Context, path string) ([]*domain.ManifestEntry, error) {
	exist, err := utilspath.FileExists(path)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	if !exist {
		return nil, apperror.NewNotFoundError("manifest", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	entries := make([]*domain.ManifestEntry, 0)
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, apperror.NewInternalError(fmt.Errorf("failed to parse manifest %s: %w", path, err))
	}
	return entries, nil
}
