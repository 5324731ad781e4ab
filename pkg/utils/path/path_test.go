package path

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name         string
		rawURL       string
		expectedHost string
		expectedPath string
		expectErr    bool
	}{
		{
			name:         "valid URL",
			rawURL:       "http://example.com/path",
			expectedHost: "example.com",
			expectedPath: "path",
			expectErr:    false,
		},
		{
			name:         "valid URL without path",
			rawURL:       "http://example.com",
			expectedHost: "example.com",
			expectedPath: "",
			expectErr:    false,
		},
		{
			name:         "invalid URL",
			rawURL:       "://example.com/path",
			expectedHost: "",
			expectedPath: "",
			expectErr:    true,
		},
		{
			name:         "S3 URL",
			rawURL:       "s3://open-data-bucket/cram/NA12878.cram",
			expectedHost: "open-data-bucket",
			expectedPath: "cram/NA12878.cram",
			expectErr:    false,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			host, path, err := ParseURL(tc.rawURL)
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
				convey.So(host, convey.ShouldEqual, tc.expectedHost)
				convey.So(path, convey.ShouldEqual, tc.expectedPath)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		expected string
	}{
		{name: "signed url", rawURL: "https://storage.googleapis.com/bucket/dir/f.bam?X-Goog-Signature=abc", expected: "f.bam"},
		{name: "plain url", rawURL: "https://signed/f.bam", expected: "f.bam"},
		{name: "no path", rawURL: "https://signed", expected: ""},
		{name: "root path", rawURL: "https://signed/", expected: ""},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			convey.So(BaseName(tc.rawURL), convey.ShouldEqual, tc.expected)
		})
	}
}

func TestEnsureParentDir(t *testing.T) {
	tempDir := t.TempDir()

	convey.Convey("create missing parents", t, func() {
		target := filepath.Join(tempDir, "a", "b", "file")
		convey.So(EnsureParentDir(target), convey.ShouldBeNil)
		exist, err := FileExists(filepath.Dir(target))
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeTrue)
	})

	convey.Convey("mkdir failure is returned", t, func() {
		patch := gomonkey.ApplyFunc(os.MkdirAll, func(_ string, _ os.FileMode) error {
			return fmt.Errorf("read-only file system")
		})
		defer patch.Reset()

		convey.So(EnsureParentDir(filepath.Join(tempDir, "c", "file")), convey.ShouldNotBeNil)
	})
}
