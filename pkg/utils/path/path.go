package path

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
)

// ParseURL splits a bucket style url such as s3://bucket/key into host and key.
func ParseURL(rawURL string) (string, string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}
	host := parsedURL.Host
	prefix := strings.TrimPrefix(parsedURL.Path, "/")
	return host, prefix, nil
}

func FileExists(filename string) (bool, error) {
	_, err := os.Stat(filename)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// EnsureParentDir creates the directory holding path if it does not exist yet.
func EnsureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), os.FileMode(consts.DefaultFileMode))
}

// BaseName returns the last path element of a url, ignoring query and fragment.
func BaseName(rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Path == "" {
		return ""
	}
	name := filepath.Base(parsedURL.Path)
	if name == "/" || name == "." {
		return ""
	}
	return name
}
