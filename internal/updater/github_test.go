package updater

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/stash-labs/stash/releases/latest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"tag_name":"v1.4.0","html_url":"https://example.com/v1.4.0"}`)
	}))
	defer srv.Close()

	u := New("1.0.0", WithAPIBase(srv.URL), WithHTTPClient(srv.Client()))
	release, err := u.CheckLatestVersion()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if release.Version != "v1.4.0" {
		t.Errorf("Version = %q, want v1.4.0", release.Version)
	}
}

func TestCheckSpecificVersion_AddsVPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/stash-labs/stash/releases/tags/v1.2.3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"tag_name":"v1.2.3"}`)
	}))
	defer srv.Close()

	u := New("1.0.0", WithAPIBase(srv.URL), WithHTTPClient(srv.Client()))
	if _, err := u.CheckSpecificVersion("1.2.3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchRelease_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	u := New("1.0.0", WithAPIBase(srv.URL), WithHTTPClient(srv.Client()))
	if _, err := u.CheckLatestVersion(); err == nil {
		t.Error("expected error for missing release")
	}
}
