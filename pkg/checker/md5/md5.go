package md5

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GBA-BI/drs-manifest/pkg/checker"
)

func NewMD5Checker(checksum string) checker.Checker {
	return &MD5Checker{
		checksum: strings.ToLower(strings.TrimSpace(checksum)),
	}
}

type MD5Checker struct {
	checksum string
}

func (m *MD5Checker) Check(path string) (bool, error) {
	sum, err := Sum(path)
	if err != nil {
		return false, err
	}
	return sum == m.checksum, nil
}

// Sum returns the lowercase hex md5 digest of the file at path.
func Sum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s %w", path, err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to build hash %w", err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
