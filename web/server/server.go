// Package server exposes the frame renderer over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"

	"github.com/foglab/go-volumetric-raymarcher/pkg/log"
	"github.com/foglab/go-volumetric-raymarcher/pkg/renderer"
	"github.com/foglab/go-volumetric-raymarcher/pkg/scene"
)

// Server handles web requests for the volumetric renderer.
type Server struct {
	port   int
	logger log.Logger
}

// NewServer creates a new web server on the given port.
func NewServer(port int, logger log.Logger) *Server {
	return &Server{port: port, logger: logger}
}

// RenderRequest represents a render request from the client.
type RenderRequest struct {
	Scene  string  `json:"scene"`  // scene preset name
	Width  int     `json:"width"`  // image width
	Height int     `json:"height"` // image height
	Time   float64 `json:"time"`   // scene time in seconds
}

// Handler returns the route table. Split out from Start so tests can
// drive the server through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// Start starts the web server and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	if s.logger != nil {
		s.logger.Noticef("starting web server on http://localhost%s", addr)
	}
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available scene presets.
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.List()})
}

// handleRender renders one frame and returns it as a PNG.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	sc, err := scene.New(req.Scene)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusBadRequest
		}
		s.sendError(w, status, err.Error())
		return
	}

	fr, err := renderer.NewFrameRenderer(sc, req.Width, req.Height, renderer.DefaultRenderOptions(), s.logger)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	camera := renderer.NewCamera(sc.GetCameraConfig())
	fs := camera.FrameState(uint32(req.Width), uint32(req.Height), req.Time, 0)
	img, stats := fr.RenderFrame(fs)

	if s.logger != nil {
		s.logger.Infof("rendered %q %dx%d for %s in %s",
			req.Scene, req.Width, req.Height, r.RemoteAddr, stats.RenderTime)
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil && s.logger != nil {
		s.logger.Errorf("failed to stream png: %v", err)
	}
}

// parseRenderRequest parses and validates request parameters.
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if name := r.URL.Query().Get("scene"); name != "" {
		req.Scene = name
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Time, err = parseFloatParam(r.URL.Query(), "time", 0, 0, 86400); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from the URL query with validation.
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from the URL query with validation.
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func (s *Server) sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
