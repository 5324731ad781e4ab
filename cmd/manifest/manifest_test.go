package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/GBA-BI/drs-manifest/cmd/manifest/options"
	"github.com/GBA-BI/drs-manifest/internal/domain"
)

func newFakeServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/ga4gh/drs/v1/objects/obj1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{
			"id": "obj1", "name": "meta.bam", "size": 13,
			"checksums": [{"type": "md5", "checksum": "6cd3556deb0da54bca060b4c39479839"}],
			"access_methods": [{"type": "gs", "access_id": "gs", "access_url": {"url": "gs://bucket/f.bam"}}]
		}`)
	})
	mux.HandleFunc("/ga4gh/drs/v1/objects/obj1/access/gs", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = fmt.Fprintf(w, `{"url": "%s/signed/f.bam?sig=x"}`, server.URL)
	})
	mux.HandleFunc("/api/link/v1/good/accesstoken", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer id-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = fmt.Fprint(w, `{"token": "access-token", "expires_at": "2030-01-01T00:00:00Z"}`)
	})
	mux.HandleFunc("/api/link/v1/good/serviceaccount/key", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"data": {"type": "service_account", "client_email": "sa@example.com"}}`)
	})
	mux.HandleFunc("/api/link/v1/denied/accesstoken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = fmt.Fprint(w, `{"error": "forbidden"}`)
	})
	mux.HandleFunc("/api/link/v1/denied/serviceaccount/key", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/signed/f.bam", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, "Hello, world!")
	})
	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestOptions(t *testing.T, server *httptest.Server) *options.Options {
	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	providers := fmt.Sprintf(`providers:
  - prefix: drs://dg.GOOD
    metadata_host: %[1]s
    access_type: gs
    auth_provider: good
  - prefix: drs://dg.DENY
    metadata_host: %[1]s
    access_type: gs
    auth_provider: denied
`, u.Host)
	providersFile := filepath.Join(dir, "providers.yaml")
	if err := os.WriteFile(providersFile, []byte(providers), 0644); err != nil {
		t.Fatal(err)
	}

	opts := options.NewOptions()
	opts.Log.Level = "error"
	opts.App.WorkDir = filepath.Join(dir, "work")
	opts.RepoConfig.ProvidersFile = providersFile
	opts.RepoConfig.DRS.InsecureDomains = []string{u.Host}
	opts.RepoConfig.Bond.Host = u.Host
	opts.RepoConfig.Bond.Scheme = "http"
	opts.RepoConfig.Identity.Command = "echo id-token"
	return opts
}

func TestManifestCommand(t *testing.T) {
	convey.Convey("writes a manifest then localizes it", t, func() {
		server := newFakeServer(t)
		opts := newTestOptions(t, server)
		manifestPath := filepath.Join(t.TempDir(), "manifest.json")

		cmd := newManifestCommand(context.Background(), opts)
		cmd.SetArgs([]string{manifestPath, "drs://dg.GOOD:obj1"})
		convey.So(cmd.Execute(), convey.ShouldBeNil)

		content, err := os.ReadFile(manifestPath)
		convey.So(err, convey.ShouldBeNil)
		var entries []*domain.ManifestEntry
		convey.So(json.Unmarshal(content, &entries), convey.ShouldBeNil)
		convey.So(len(entries), convey.ShouldEqual, 1)
		convey.So(entries[0].URL, convey.ShouldEqual, server.URL+"/signed/f.bam?sig=x")
		convey.So(entries[0].Checksum, convey.ShouldEqual, "6cd3556deb0da54bca060b4c39479839")
		convey.So(entries[0].ChecksumAlgorithm, convey.ShouldEqual, "md5")
		convey.So(entries[0].Filepath, convey.ShouldEqual, filepath.Join(opts.App.WorkDir, "dg.GOOD_obj1", "f.bam"))
		convey.So(entries[0].GSURI, convey.ShouldEqual, "gs://bucket/f.bam")

		localize := newLocalizeCommand(context.Background(), opts)
		localize.SetArgs([]string{manifestPath})
		convey.So(localize.Execute(), convey.ShouldBeNil)
		data, err := os.ReadFile(entries[0].Filepath)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(data), convey.ShouldEqual, "Hello, world!")

		populate := newPopulateCommand(context.Background(), opts)
		populate.SetArgs([]string{manifestPath})
		convey.So(populate.Execute(), convey.ShouldBeNil)
		content, err = os.ReadFile(manifestPath)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(content), convey.ShouldContainSubstring, `"client_email": "sa@example.com"`)
	})

	convey.Convey("a 403 from the broker writes no manifest", t, func() {
		server := newFakeServer(t)
		opts := newTestOptions(t, server)
		manifestPath := filepath.Join(t.TempDir(), "manifest.json")

		cmd := newManifestCommand(context.Background(), opts)
		cmd.SetArgs([]string{manifestPath, "drs://dg.GOOD:obj1", "drs://dg.DENY:obj1"})
		err := cmd.Execute()
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldContainSubstring, "403")

		_, statErr := os.Stat(manifestPath)
		convey.So(os.IsNotExist(statErr), convey.ShouldBeTrue)
	})

	convey.Convey("too few arguments", t, func() {
		cmd := newManifestCommand(context.Background(), options.NewOptions())
		cmd.SetArgs([]string{"manifest.json"})
		convey.So(cmd.Execute(), convey.ShouldNotBeNil)
	})
}
