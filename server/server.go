/*
 * MIT License
 *
 * Copyright (c) 2026 ZenClock Team
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package server

import (
	"context"
	"net"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/zenclock/pomodoro/errors"
	"github.com/zenclock/pomodoro/internal/clock"
	"github.com/zenclock/pomodoro/log"
	"github.com/zenclock/pomodoro/timer"
)

// mountPath is the path the MCP streamable handler is mounted on.
const mountPath = "/mcp"

// Server serves the timer tools and the widget resource over HTTP.
type Server struct {
	config    *Config
	logger    log.Logger
	timer     *timer.Timer
	scheduler *timer.QuartzScheduler
	mcpServer *mcp.Server

	httpServer *http.Server
	listener   net.Listener
	// states whether the server has started or not
	started *atomic.Bool
}

// New creates a Server from the given config. The timer starts idle; nothing
// listens until Start is called.
func New(config *Config) *Server {
	scheduler := timer.NewQuartzScheduler(config.Logger(), config.ShutdownTimeout())

	server := &Server{
		config:    config,
		logger:    config.Logger(),
		scheduler: scheduler,
		timer:     timer.New(clock.NewWallClock(), scheduler),
		started:   atomic.NewBool(false),
	}

	server.mcpServer = mcp.NewServer(&mcp.Implementation{
		Name:    config.Name(),
		Version: config.Version(),
	}, nil)
	server.registerTools()
	server.registerWidget()

	return server
}

// Start starts the completion scheduler and the HTTP listener.
func (s *Server) Start(ctx context.Context) error {
	if s.started.Load() {
		return errors.ErrServerStarted
	}

	s.logger.Infof("starting %s server on %s...", s.config.Name(), s.config.ListenAddr())
	s.scheduler.Start(ctx)

	mux := http.NewServeMux()
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
	mux.Handle(mountPath, withCORS(handler))

	s.configureServer(mux)

	listener, err := net.Listen("tcp", s.config.ListenAddr())
	if err != nil {
		s.scheduler.Stop(ctx)
		return err
	}
	s.listener = listener

	go s.serve()

	s.started.Store(true)
	s.logger.Infof("%s server started on %s.:)", s.config.Name(), s.config.ListenAddr())
	return nil
}

// Stop gracefully shuts down the HTTP server and the completion scheduler.
func (s *Server) Stop(ctx context.Context) error {
	if !s.started.Load() {
		return errors.ErrServerNotStarted
	}

	s.logger.Infof("stopping %s server...", s.config.Name())
	s.started.Store(false)

	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout())
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.scheduler.Stop(ctx)

	if err != nil {
		return multierr.Append(err, s.listener.Close())
	}

	s.logger.Infof("%s server stopped.:)", s.config.Name())
	return nil
}

// ListenAddr returns the address the listener is bound to. It differs from
// the configured address when the configuration asked for port 0.
func (s *Server) ListenAddr() string {
	if s.listener == nil {
		return s.config.ListenAddr()
	}
	return s.listener.Addr().String()
}

// serve runs the HTTP server until Stop shuts it down.
func (s *Server) serve() {
	if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		s.logger.Error(err)
	}
}
