package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

const serveScenario = `{
  "name": "api case",
  "container": {"w": 500, "h": 300},
  "anchor": {"left": 200, "top": 150},
  "overlay": {"w": 100, "h": 40},
  "gravity": "w",
  "datum": {
    "series": [
      {"key": "Requests", "value": 1234.5, "color": "#1f77b4"}
    ]
  }
}`

func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	srv := newServer(charmlog.New(io.Discard), cfg)
	t.Cleanup(srv.Close)
	ts := httptest.NewServer(srv.router())
	t.Cleanup(ts.Close)
	return ts
}

func TestServeHealth(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestServePlace(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, err := http.Post(ts.URL+"/v1/place", "application/json", strings.NewReader(serveScenario))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body: %s", resp.StatusCode, body)
	}
	if id := resp.Header.Get("X-Request-ID"); id == "" {
		t.Error("missing X-Request-ID header")
	}

	var got placeResult
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Left != 225 || got.Top != 130 {
		t.Errorf("position = (%g, %g), want (225, 130)", got.Left, got.Top)
	}
	if got.Opacity != 1 {
		t.Errorf("opacity = %g, want 1", got.Opacity)
	}
}

func TestServePlaceRejectsBadScenario(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, err := http.Post(ts.URL+"/v1/place", "application/json",
		strings.NewReader(`{"container":{"w":0,"h":0},"anchor":{},"datum":{"series":[]}}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got["code"] != "INVALID_SCENARIO" {
		t.Errorf("error code = %q, want INVALID_SCENARIO", got["code"])
	}
}

func TestServeRenderReturnsSVG(t *testing.T) {
	ts := newTestServer(t, Config{Serve: ServeConfig{CacheContent: true}})

	for i := 0; i < 2; i++ { // second hit comes from the snapshot cache
		resp, err := http.Post(ts.URL+"/v1/render", "application/json", strings.NewReader(serveScenario))
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, body: %s", resp.StatusCode, body)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
			t.Errorf("content type = %q", ct)
		}
		if !strings.Contains(string(body), "<svg") || !strings.Contains(string(body), "</svg>") {
			t.Errorf("response is not an SVG document:\n%s", body)
		}
	}
}

func TestServeVersion(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/version")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got["version"] == "" {
		t.Error("version missing from response")
	}
}
