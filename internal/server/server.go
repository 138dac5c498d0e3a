// Package server exposes the engine pool to editors over a websocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/t14raptor/jsparse/engine"
)

// Submitter runs a request, typically an *engine.Pool.
type Submitter interface {
	Submit(ctx context.Context, req engine.Request) (engine.Response, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // editors connect from local pages
	},
}

const idleTimeout = 120 * time.Second

type Server struct {
	pool   Submitter
	logger *slog.Logger
}

func New(pool Submitter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{pool: pool, logger: logger}
}

// Handler routes /parse to the websocket endpoint and /healthz to a
// liveness check.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/parse", s.serveParse)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("Server stopped")
	return nil
}

func (s *Server) serveParse(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.logger.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	for {
		conn.SetReadDeadline(time.Now().Add(idleTimeout))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Error("WebSocket read error", "error", err)
			} else {
				s.logger.Info("WebSocket connection closed")
			}
			return
		}

		resp := s.handle(ctx, data)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Error("WebSocket write error", "error", err)
			return
		}
	}
}

func (s *Server) handle(ctx context.Context, data []byte) engine.Response {
	var req engine.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return engine.Response{IsError: true, Message: "invalid request: " + err.Error()}
	}
	resp, err := s.pool.Submit(ctx, req)
	if err != nil {
		s.logger.Warn("Request failed", "id", req.ID, "task", req.Task, "error", err)
		return engine.Response{ID: req.ID, IsError: true, Message: err.Error()}
	}
	return resp
}
