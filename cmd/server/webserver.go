package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"

	mandel "github.com/timelessnesses/mandelbrot.png"
	"github.com/timelessnesses/mandelbrot.png/render"
)

//go:embed static/index.html
var indexHTML []byte

// plotServer serves one configured plot, both as a PNG and as a point stream.
type plotServer struct {
	cfg      *mandel.Config
	style    render.Style
	bandRows int

	pngOnce sync.Once
	png     []byte
	pngErr  error
}

func newPlotServer(cfg *mandel.Config, bandRows int) (*plotServer, error) {
	style, err := render.StyleFromConfig(cfg.Output)
	if err != nil {
		return nil, err
	}
	return &plotServer{cfg: cfg, style: style, bandRows: bandRows}, nil
}

func (s *plotServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/mandelbrot.png", s.handleImage)
	r.Get("/ws", s.handleStream)
	return r
}

func (s *plotServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// image renders the plot the first time it is asked for and caches the encoded PNG.
func (s *plotServer) image() ([]byte, error) {
	s.pngOnce.Do(func() {
		var buf bytes.Buffer
		n, err := mandel.Plot(s.cfg, render.PNGWriter{W: &buf, Style: s.style})
		if err != nil {
			s.pngErr = err
			return
		}
		log.Printf("rendered %d stable points", n)
		s.png = buf.Bytes()
	})
	return s.png, s.pngErr
}

func (s *plotServer) handleImage(w http.ResponseWriter, r *http.Request) {
	img, err := s.image()
	if err != nil {
		log.Printf("image: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(img)
}

// handleStream upgrades to a websocket and streams the stable points of the plot:
// one header message, one message per band of grid rows, then a done message.
func (s *plotServer) handleStream(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	log.Printf("streaming to %s", r.RemoteAddr)
	if err := s.stream(r, c); err != nil {
		log.Printf("stream to %s: %v", r.RemoteAddr, err)
		return
	}
	c.Close(websocket.StatusNormalClosure, "")
}

func (s *plotServer) stream(r *http.Request, c *websocket.Conn) error {
	ctx := r.Context()
	grid := mandel.Sample(s.cfg.Region, s.cfg.Density)

	header := streamMsg{
		Type:       msgHeader,
		Region:     &s.cfg.Region,
		Cols:       grid.Cols,
		Rows:       grid.Rows,
		Iterations: s.cfg.Iterations,
	}
	if err := wsjson.Write(ctx, c, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	total := 0
	for _, b := range splitRows(grid.Rows, s.bandRows) {
		samples := grid.Points[b.first*grid.Cols : b.end*grid.Cols]
		points := mandel.AppendStable(nil, samples, s.cfg.Iterations)
		total += len(points)

		msg := streamMsg{Type: msgBand, FirstRow: b.first, EndRow: b.end, Points: points}
		if err := wsjson.Write(ctx, c, msg); err != nil {
			return fmt.Errorf("write band %d-%d: %w", b.first, b.end, err)
		}
	}

	return wsjson.Write(ctx, c, streamMsg{Type: msgDone, Total: total})
}
