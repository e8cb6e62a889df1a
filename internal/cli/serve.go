package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hoverlay/hoverlay/pkg/buildinfo"
	"github.com/hoverlay/hoverlay/pkg/cache"
	"github.com/hoverlay/hoverlay/pkg/errors"
	scenarioio "github.com/hoverlay/hoverlay/pkg/io"
	"github.com/hoverlay/hoverlay/pkg/render"
	"github.com/hoverlay/hoverlay/pkg/render/svg"
)

const (
	defaultServeAddr = ":8080"

	// snapshotTTL bounds how long rendered snapshots stay memoized.
	snapshotTTL = 5 * time.Minute

	maxScenarioBytes = 1 << 20
)

// newServeCmd creates the serve command exposing scenario placement over
// HTTP.
func newServeCmd() *cobra.Command {
	var addr, config string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scenario placement over HTTP",
		Long: `Serve exposes the placement engine as a small HTTP API:

  POST /v1/place    run a scenario, respond with the settled placement (JSON)
  POST /v1/render   run a scenario, respond with an SVG snapshot
  GET  /healthz     liveness probe
  GET  /version     build information`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := configPath(config)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = orDefault(cfg.Serve.Addr, defaultServeAddr)
			}

			logger := loggerFromContext(cmd.Context())
			srv := newServer(logger, cfg)
			defer srv.Close()

			logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, srv.router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, then :8080)")
	cmd.Flags().StringVar(&config, "config", "", "config file path")

	return cmd
}

// server holds the HTTP handler state: the logger, config-file defaults,
// and the snapshot cache.
type server struct {
	logger    *charmlog.Logger
	cfg       Config
	snapshots cache.Cache
}

func newServer(logger *charmlog.Logger, cfg Config) *server {
	snapshots := cache.Cache(cache.NewNullCache())
	if cfg.Serve.CacheContent {
		snapshots = cache.NewScoped(cache.NewMemory(), "svg")
	}
	return &server{logger: logger, cfg: cfg, snapshots: snapshots}
}

func (s *server) Close() {
	_ = s.snapshots.Close()
}

func (s *server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Post("/v1/place", s.handlePlace)
	r.Post("/v1/render", s.handleRender)
	return r
}

// requestLogger assigns each request an id and logs method, path, and
// duration at debug level.
func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start).Round(time.Microsecond))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

func (s *server) handlePlace(w http.ResponseWriter, r *http.Request) {
	res, err := s.runScenario(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, placeResult{
		Name:     res.Scenario.Name,
		Left:     res.Position.Left,
		Top:      res.Position.Top,
		Width:    res.Size.W,
		Height:   res.Size.H,
		Opacity:  res.Opacity,
		Content:  res.Content,
		Overlay:  res.Tip.ID(),
		Gravity:  string(res.Tip.Gravity()),
		Distance: res.Tip.Distance(),
	})
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := readScenarioBody(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	key := cache.Hash(body)
	if data, ok, cacheErr := s.snapshots.Get(r.Context(), key); cacheErr == nil && ok {
		writeSVG(w, data)
		return
	}

	sc, err := decodeScenario(body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	applyConfig(sc, s.cfg)

	res, err := render.Run(sc)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := svg.Render(res, snapshotOptions(s.cfg, &renderOpts{})...)
	_ = s.snapshots.Set(r.Context(), key, out, snapshotTTL)
	writeSVG(w, out)
}

func (s *server) runScenario(r *http.Request) (*render.Result, error) {
	body, err := readScenarioBody(r)
	if err != nil {
		return nil, err
	}
	sc, err := decodeScenario(body)
	if err != nil {
		return nil, err
	}
	applyConfig(sc, s.cfg)
	return render.Run(sc)
}

func readScenarioBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxScenarioBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "read request body")
	}
	return body, nil
}

func decodeScenario(body []byte) (*scenarioio.Scenario, error) {
	return scenarioio.ReadJSON(bytes.NewReader(body))
}

// writeError maps structured error codes onto HTTP statuses.
func (s *server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidScenario, errors.ErrCodeInvalidGravity,
		errors.ErrCodeInvalidDistance, errors.ErrCodeInvalidColor,
		errors.ErrCodeInvalidClass:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	s.logger.Warn("request failed", "status", status, "error", err)
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSVG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
