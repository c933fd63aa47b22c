package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridio"
)

// errBadRender indicates an unknown render mode in a request.
var errBadRender = errors.New("server: render must be kind or fcost")

// shutdownTimeout bounds graceful shutdown in ListenAndServe.
const shutdownTimeout = 5 * time.Second

// Server routes search requests to fresh astar searches.
type Server struct {
	engine   *gin.Engine
	log      *zap.Logger
	upgrader websocket.Upgrader
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and search logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds the router.
func New(opts ...Option) *Server {
	s := &Server{
		log: zap.NewNop(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1 := r.Group("/v1")
	v1.POST("/search", s.handleSearch)
	v1.GET("/search/stream", s.handleStream)
	s.engine = r

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(begin)))
	}
}

// prepare parses the grid and builds a searcher for req.
func (s *Server) prepare(req SearchRequest) (*astar.Searcher, *grid.Grid, gridio.Mode, error) {
	mode, ok := gridio.ParseMode(req.Render)
	if !ok {
		return nil, nil, mode, fmt.Errorf("%w: %q", errBadRender, req.Render)
	}
	g, err := gridio.Load(strings.NewReader(req.Grid))
	if err != nil {
		return nil, nil, mode, err
	}
	opts := []astar.Option{astar.WithLogger(s.log.Named("astar"))}
	if req.Start != nil {
		opts = append(opts, astar.WithStart(req.Start.X, req.Start.Y))
	}
	if req.Goal != nil {
		opts = append(opts, astar.WithGoal(req.Goal.X, req.Goal.Y))
	}
	sr, err := astar.NewSearcher(g, opts...)
	if err != nil {
		return nil, nil, mode, err
	}
	return sr, g, mode, nil
}

// statusFor maps input and configuration errors to 400, the rest to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRender),
		errors.Is(err, gridio.ErrMalformedInput),
		errors.Is(err, astar.ErrConfiguration),
		errors.Is(err, grid.ErrEmptyGrid),
		errors.Is(err, grid.ErrNonRectangular):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func response(res astar.Result, g *grid.Grid, mode gridio.Mode) *SearchResponse {
	path := res.Path
	if path == nil {
		path = []grid.Point{}
	}
	return &SearchResponse{
		Found:    res.Found,
		State:    res.State.String(),
		Path:     path,
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Rendered: gridio.RenderString(g, gridio.WithMode(mode)),
	}
}

func (s *Server) handleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	sr, g, mode, err := s.prepare(req)
	if err != nil {
		c.JSON(statusFor(err), errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response(sr.Run(), g, mode))
}

// handleStream upgrades to a WebSocket and streams one message per step.
func (s *Server) handleStream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if err := s.stream(conn); err != nil {
		s.log.Warn("stream aborted", zap.Error(err))
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// stream runs the exchange; the returned error is a transport failure.
// Request problems are reported to the client as TypeError messages.
func (s *Server) stream(conn *websocket.Conn) error {
	var req SearchRequest
	if err := conn.ReadJSON(&req); err != nil {
		return conn.WriteJSON(StreamMessage{Type: TypeError, Error: err.Error()})
	}
	if req.Grid == "" {
		return conn.WriteJSON(StreamMessage{Type: TypeError, Error: "grid is required"})
	}
	sr, g, mode, err := s.prepare(req)
	if err != nil {
		return conn.WriteJSON(StreamMessage{Type: TypeError, Error: err.Error()})
	}

	for !sr.State().Done() {
		sr.Step()
		if err := conn.WriteJSON(StreamMessage{Type: TypeStep, Step: stepMessage(sr.Snapshot())}); err != nil {
			return err
		}
	}
	return conn.WriteJSON(StreamMessage{Type: TypeResult, Result: response(sr.Result(), g, mode)})
}
