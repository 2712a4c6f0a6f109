package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
  {"id":"1","title":"Zebra Tales","seasons":2,"genres":[4],"updated":"2022-11-03T07:00:00.000Z"},
  {"id":"2","title":"Apple Hour","seasons":1,"genres":[3,8]},
  {"id":"3","title":"Middle Ground","seasons":3,"genres":[4,1]}
]`

const testDetail = `{
  "id":"1","title":"Zebra Tales","description":"Stories about stripes.",
  "genres":["Comedy"],"updated":"2022-11-03T07:00:00.000Z",
  "seasons":[
    {"season":1,"title":"Origins","episodes":[{"title":"One"},{"title":"Two"}]},
    {"season":2,"title":"","episodes":[{"title":"Three"}]}
  ]
}`

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, testCatalog)
	})
	mux.HandleFunc("/id/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, testDetail)
	})
	mux.HandleFunc("/id/500", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// execute runs the command tree against baseURL with an isolated config and
// log file, returning stdout
func execute(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ui:\n  mouse: false\n"), 0644))

	full := append([]string{
		"--config", cfgPath,
		"--log-file", filepath.Join(dir, "podview.log"),
		"--base-url", baseURL,
	}, args...)

	cmd := NewRootCmd("1.2.3")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(full)
	err := cmd.Execute()
	return out.String(), err
}

func TestListPrintsCatalog(t *testing.T) {
	api := newAPI(t)

	out, err := execute(t, api.URL, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Zebra Tales")
	assert.Contains(t, out, "Comedy, Personal Growth")
	assert.Contains(t, out, "History, News")
	assert.Contains(t, out, "3 podcasts")
	assert.Less(t, strings.Index(out, "Zebra Tales"), strings.Index(out, "Apple Hour"), "default order is API order")
}

func TestListSortsByTitle(t *testing.T) {
	api := newAPI(t)

	out, err := execute(t, api.URL, "list", "--sort", "title")
	require.NoError(t, err)

	apple := strings.Index(out, "Apple Hour")
	middle := strings.Index(out, "Middle Ground")
	zebra := strings.Index(out, "Zebra Tales")
	assert.True(t, apple < middle && middle < zebra, "got:\n%s", out)
}

func TestListRejectsUnknownSort(t *testing.T) {
	api := newAPI(t)

	_, err := execute(t, api.URL, "list", "--sort", "rating")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating")
}

func TestListFiltersByGenre(t *testing.T) {
	api := newAPI(t)

	out, err := execute(t, api.URL, "list", "--filter", "genre:comedy")
	require.NoError(t, err)

	assert.Contains(t, out, "Zebra Tales")
	assert.Contains(t, out, "Middle Ground")
	assert.NotContains(t, out, "Apple Hour")
	assert.Contains(t, out, "2 of 3 podcasts")
}

func TestListFilterWithoutMatches(t *testing.T) {
	api := newAPI(t)

	out, err := execute(t, api.URL, "list", "--filter", "qqqq")
	require.NoError(t, err)
	assert.Contains(t, out, "No matches.")
}

func TestRootWithoutTerminalPrintsCatalog(t *testing.T) {
	api := newAPI(t)

	out, err := execute(t, api.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Middle Ground")
}

func TestListReportsFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, err := execute(t, server.URL, "list")
	require.Error(t, err)
	assert.Equal(t, "failed to load podcasts: HTTP error! status: 502", err.Error())
}

func TestShowPrintsSeasons(t *testing.T) {
	api := newAPI(t)

	out, err := execute(t, api.URL, "show", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Zebra Tales")
	assert.Contains(t, out, "Stories about stripes.")
	assert.Contains(t, out, "2 Seasons · 3 Episodes")
	assert.Contains(t, out, "Origins · 2 Episodes")
	assert.Contains(t, out, "Season 2 · 1 Episode")
}

func TestShowReportsHTTPError(t *testing.T) {
	api := newAPI(t)

	_, err := execute(t, api.URL, "show", "500")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error! status: 500")
}

func TestShowRequiresID(t *testing.T) {
	api := newAPI(t)

	_, err := execute(t, api.URL, "show")
	assert.Error(t, err)
}

func TestGenresListsTable(t *testing.T) {
	out, err := execute(t, "http://127.0.0.1:1", "genres")
	require.NoError(t, err)

	assert.Contains(t, out, "Personal Growth")
	assert.Contains(t, out, "Kids and Family")
}

func TestConfigInitWritesEffectiveConfig(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "http://podcasts.example.com", "config", "init", "--dir", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "config.yaml")
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "http://podcasts.example.com")
}

func TestInvalidBaseURLFailsSetup(t *testing.T) {
	_, err := execute(t, "ftp://example.com", "genres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestVersionFlag(t *testing.T) {
	cmd := NewRootCmd("1.2.3")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "podview 1.2.3\n", out.String())
}
