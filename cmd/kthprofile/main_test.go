package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/kth-tools/kthprofile/internal/config"
)

func executeRoot(t *testing.T, cfg config.Config, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(cfg, &out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func newDirectory(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/api/profile/1.1/u1abcde":
			fmt.Fprint(w, `{"givenName":"Ada","familyName":"Lovelace","email":"ada@example.com","url":"https://example.com/ada","worksFor":[{"name":"CS"}],"jobTitle":"","workLocation":"Building 1","telephone":null}`) //nolint:errcheck
		case "/api/profile/1.1/badjson":
			fmt.Fprint(w, `{"givenName":`) //nolint:errcheck
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoot_Scenario(t *testing.T) {
	var hits atomic.Int32
	srv := newDirectory(t, &hits)
	cfg := config.Default()
	cfg.APIURL = srv.URL

	stdout, _, err := executeRoot(t, cfg, "u1abcde", "missing", "badjson")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	plain := ansi.Strip(stdout)
	blocks := strings.Split(strings.TrimSuffix(plain, "\n\n"), "\n\n")
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3:\n%s", len(blocks), plain)
	}

	wantAda := "Ada Lovelace <ada@example.com>\n    CS\n    Plats: Building 1"
	if blocks[0] != wantAda {
		t.Errorf("block 0 = %q, want %q", blocks[0], wantAda)
	}
	if !strings.Contains(stdout, "\x1b]8;;https://example.com/ada\x1b\\Ada Lovelace\x1b]8;;\x1b\\") {
		t.Errorf("stdout missing hyperlink: %q", stdout)
	}
	if !strings.HasPrefix(blocks[1], `Failed to get user "missing": `) || !strings.Contains(blocks[1], "HTTP 404") {
		t.Errorf("block 1 = %q, want 404 failure for missing", blocks[1])
	}
	if !strings.HasPrefix(blocks[2], `Failed to get user "badjson": `) {
		t.Errorf("block 2 = %q, want failure for badjson", blocks[2])
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("server hits = %d, want 3", got)
	}
}

func TestRoot_NoArgs(t *testing.T) {
	var hits atomic.Int32
	srv := newDirectory(t, &hits)
	cfg := config.Default()
	cfg.APIURL = srv.URL

	stdout, stderr, err := executeRoot(t, cfg)
	if err == nil {
		t.Fatal("expected usage error with no identifiers")
	}
	if !strings.Contains(err.Error(), "requires at least 1 arg") {
		t.Errorf("error = %q, want minimum args error", err)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr = %q, want usage", stderr)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
}

func TestRoot_UnknownFlag(t *testing.T) {
	_, stderr, err := executeRoot(t, config.Default(), "--json", "u1abcde")
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr = %q, want usage", stderr)
	}
}

func TestRoot_Help(t *testing.T) {
	stdout, _, err := executeRoot(t, config.Default(), "--help")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"kthprofile", "NAME...", "--version", "--help"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "log-level") {
		t.Errorf("help output shows hidden flag:\n%s", stdout)
	}
}

func TestRoot_Version(t *testing.T) {
	stdout, _, err := executeRoot(t, config.Default(), "--version")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if want := "kthprofile " + version + "\n"; stdout != want {
		t.Errorf("version output = %q, want %q", stdout, want)
	}
}

func TestRoot_LogLevel(t *testing.T) {
	var hits atomic.Int32
	srv := newDirectory(t, &hits)
	cfg := config.Default()
	cfg.APIURL = srv.URL

	_, stderr, err := executeRoot(t, cfg, "--log-level", "debug", "u1abcde")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(stderr, "profile request") {
		t.Errorf("stderr = %q, want debug request log", stderr)
	}

	_, stderr, err = executeRoot(t, cfg, "u1abcde")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want quiet default", stderr)
	}
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	var hits atomic.Int32
	srv := newDirectory(t, &hits)
	cfg := config.Default()
	cfg.APIURL = srv.URL

	_, _, err := executeRoot(t, cfg, "--log-level", "loud", "u1abcde")
	if err == nil || !strings.Contains(err.Error(), "log level") {
		t.Errorf("error = %v, want log level error", err)
	}
	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
}
