package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/lablist/pkg/errors"
	"github.com/matzehuels/lablist/pkg/integrations/gitlab"
)

// isolate points config, cache and GitLab settings at test-local values.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	for _, k := range []string{
		"GITLAB_URL", "GITLAB_TOKEN", "LABLIST_CACHE_BACKEND", "LABLIST_CACHE_TTL",
		"LABLIST_REDIS_ADDR", "LABLIST_REDIS_DB", "LABLIST_MONGO_URI", "LABLIST_SERVER_ADDR",
	} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	c.Out = &out

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no filters", nil, "projects"},
		{"archived", []string{"--archived"}, "projects?archived=true"},
		{"archived false is explicit", []string{"--archived=false"}, "projects?archived=false"},
		{"fixed order", []string{"--sort", "ASC", "--visibility", "private"}, "projects?visibility=private&sort=asc"},
		{
			"all filters",
			[]string{"--simple", "--search", "foo", "--sort", "desc", "--order-by", "name", "--visibility", "public", "--archived=false"},
			"projects?archived=false&visibility=public&order_by=name&sort=desc&search=foo&simple=true",
		},
		{"raw search", []string{"--search", "foo bar"}, "projects?search=foo bar"},
		{"escaped search", []string{"--search", "foo bar", "--escape"}, "projects?search=foo+bar"},
		{"scope", []string{"--scope", "starred", "--simple=false"}, "projects/starred?simple=false"},
		{"member scope", []string{"--scope", "member"}, "projects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			out, err := execute(t, append([]string{"query"}, tt.args...)...)
			if err != nil {
				t.Fatalf("query error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("query = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQueryCommandInvalid(t *testing.T) {
	tests := [][]string{
		{"--visibility", "secret"},
		{"--order-by", "stars"},
		{"--sort", "sideways"},
		{"--scope", "mine"},
		{"--search", "a\x01b"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			isolate(t)
			_, err := execute(t, append([]string{"query"}, args...)...)
			if !apperr.Is(err, apperr.ErrCodeInvalidInput) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func newGitLab(t *testing.T, list []gitlab.Project) (*httptest.Server, *atomic.Int32, *atomic.Value) {
	t.Helper()
	var calls atomic.Int32
	var lastURI atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		lastURI.Store(r.URL.RequestURI())
		json.NewEncoder(w).Encode(list)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls, &lastURI
}

func TestProjectsCommandJSON(t *testing.T) {
	isolate(t)
	activity := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	srv, calls, lastURI := newGitLab(t, []gitlab.Project{
		{ID: 1, Name: "lablist", PathWithNamespace: "tools/lablist", WebURL: "https://gitlab.example/tools/lablist", LastActivityAt: &activity},
	})
	t.Setenv("GITLAB_URL", srv.URL+"/api/v4")

	out, err := execute(t, "projects", "--scope", "owned", "--search", "lab list", "--json")
	if err != nil {
		t.Fatalf("projects error: %v", err)
	}
	if got := lastURI.Load(); got != "/api/v4/projects/owned?search=lab+list" {
		t.Errorf("request URI = %v", got)
	}

	var got []gitlab.Project
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0].PathWithNamespace != "tools/lablist" {
		t.Errorf("projects = %+v", got)
	}

	// Second run is served from the file cache
	if _, err := execute(t, "projects", "--scope", "owned", "--search", "lab list", "--json"); err != nil {
		t.Fatalf("projects error: %v", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("upstream calls = %d, want 1", n)
	}

	// --refresh and --no-cache both go upstream
	if _, err := execute(t, "projects", "--scope", "owned", "--search", "lab list", "--json", "--refresh"); err != nil {
		t.Fatalf("projects --refresh error: %v", err)
	}
	if _, err := execute(t, "projects", "--scope", "owned", "--search", "lab list", "--json", "--no-cache"); err != nil {
		t.Fatalf("projects --no-cache error: %v", err)
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("upstream calls = %d, want 3", n)
	}
}

func TestProjectsCommandTable(t *testing.T) {
	isolate(t)
	srv, _, _ := newGitLab(t, []gitlab.Project{
		{ID: 1, PathWithNamespace: "tools/lablist", Visibility: "private", StarCount: 4},
		{ID: 2, PathWithNamespace: "tools/old", Archived: true},
	})
	t.Setenv("GITLAB_URL", srv.URL)

	out, err := execute(t, "projects")
	if err != nil {
		t.Fatalf("projects error: %v", err)
	}
	for _, want := range []string{"Project", "tools/lablist", "private", "tools/old (archived)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestProjectsCommandFlagConflict(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "projects", "--json", "--interactive"); err == nil {
		t.Error("--json with --interactive should fail")
	}
}

func TestProjectsCommandInvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("LABLIST_CACHE_BACKEND", "memcached")
	_, err := execute(t, "projects")
	if !apperr.Is(err, apperr.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestConfigFlag(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[cache]\ndir = \"/tmp/lablist-custom\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "/tmp/lablist-custom" {
		t.Errorf("cache path = %q", got)
	}

	out, err = execute(t, "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("config path error: %v", err)
	}
	if got := strings.TrimSpace(out); got != path {
		t.Errorf("config path = %q, want %q", got, path)
	}
}

func TestConfigShowMasksToken(t *testing.T) {
	isolate(t)
	t.Setenv("GITLAB_TOKEN", "glpat-secret")

	out, err := execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if strings.Contains(out, "glpat-secret") {
		t.Errorf("config show leaks token:\n%s", out)
	}
	if !strings.Contains(out, "[gitlab]") {
		t.Errorf("config show output:\n%s", out)
	}
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "lablist") {
		t.Error("bash completion should mention lablist")
	}
}
