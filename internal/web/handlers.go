package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yaklabco/rocketlab/internal/logging"
	"github.com/yaklabco/rocketlab/pkg/asset"
	"github.com/yaklabco/rocketlab/pkg/launch"
	"github.com/yaklabco/rocketlab/pkg/plot"
)

// sodaParam is the query parameter carrying the slider value.
const sodaParam = "soda"

// LaunchResponse is the JSON body of /api/launch.
type LaunchResponse struct {
	SodaAmount float64    `json:"soda_amount"`
	Height     float64    `json:"height"`
	Label      string     `json:"label"`
	Summary    string     `json:"summary"`
	Marker     plot.Kind  `json:"marker"`
	Position   plot.Point `json:"position"`
	Warning    string     `json:"warning,omitempty"`
}

// pass is one evaluation-and-render cycle.
type pass struct {
	launch  launch.Launch
	frame   *plot.Frame
	warning string
}

// evaluate runs the full pipeline for one slider value. Asset problems
// surface as a warning; only rendering failures are errors.
func (s *Server) evaluate(ctx context.Context, raw string) (*pass, error) {
	logger := logging.FromContext(ctx)

	soda := s.opts.Input.Parse(raw)
	l := launch.New(s.opts.Model, soda)

	res := asset.Load(ctx, s.opts.AssetPath)
	marker, warning := plot.SelectMarker(res, s.opts.Chart)
	if warning != "" {
		logger.Warn("using triangle marker", logging.FieldAsset, s.opts.AssetPath, logging.FieldError, warning)
	} else {
		logger.Debug("asset", logging.FieldAsset, asset.Describe(res))
	}

	frame, err := plot.Render(ctx, s.opts.Chart, l, marker)
	if err != nil {
		return nil, err
	}

	logger.Debug("launch rendered",
		logging.FieldSoda, l.SodaAmount,
		logging.FieldHeight, l.Height,
		logging.FieldMarker, frame.Marker,
	)

	return &pass{launch: l, frame: frame, warning: warning}, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p, err := s.evaluate(r.Context(), r.URL.Query().Get(sodaParam))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	summary, err := s.page.markdown(p.launch.SummaryMarkdown())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	err = s.page.render(&buf, pageData{
		Summary: summary,
		Chart:   dataURI(p.frame.PNG),
		Warning: p.warning,
		Label:   p.frame.Label,
		Soda:    p.launch.SodaLabel(),
		Min:     s.opts.Input.Min,
		Max:     s.opts.Input.Max,
		Step:    s.opts.Input.Step,
		Width:   s.opts.Chart.Width,
		Height:  s.opts.Chart.Height,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	p, err := s.evaluate(r.Context(), r.URL.Query().Get(sodaParam))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(p.frame.PNG)))
	if p.warning != "" {
		w.Header().Set("X-Rocket-Warning", p.warning)
	}
	_, _ = w.Write(p.frame.PNG)
}

func (s *Server) handleLaunch(w http.ResponseWriter, r *http.Request) {
	p, err := s.evaluate(r.Context(), r.URL.Query().Get(sodaParam))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := LaunchResponse{
		SodaAmount: p.launch.SodaAmount,
		Height:     p.launch.Height,
		Label:      p.frame.Label,
		Summary:    p.launch.Summary(),
		Marker:     p.frame.Marker,
		Position:   p.frame.Data,
		Warning:    p.warning,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).Error("encode response", logging.FieldError, err)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("render failed", logging.FieldError, err)
	status := http.StatusInternalServerError
	if r.Context().Err() != nil {
		status = http.StatusServiceUnavailable
	}
	http.Error(w, http.StatusText(status), status)
}
