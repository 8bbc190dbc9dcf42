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

// Package server exposes the pomodoro timer as MCP tools over HTTP.
package server

import (
	"time"

	"github.com/zenclock/pomodoro/errors"
	"github.com/zenclock/pomodoro/internal/validation"
	"github.com/zenclock/pomodoro/log"
)

// Config holds the server settings.
type Config struct {
	// Specifies the server name advertised to MCP clients
	name string
	// Specifies the server version advertised to MCP clients
	version string
	// Specifies the TCP address the HTTP listener binds to
	listenAddr string
	// Specifies the logger to use
	logger log.Logger
	// Specifies how long a graceful shutdown may take. The default value is 5s
	shutdownTimeout time.Duration
}

// NewConfig creates an instance of Config
func NewConfig(listenAddr string, options ...Option) (*Config, error) {
	config := &Config{
		name:            "pomodoro",
		version:         "dev",
		listenAddr:      listenAddr,
		logger:          log.DefaultLogger,
		shutdownTimeout: 5 * time.Second,
	}

	for _, opt := range options {
		opt.Apply(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return validation.
		New(validation.FailFast()).
		AddValidator(validation.NewTCPAddressValidator(c.listenAddr)).
		AddAssertion(c.name != "", "name is required").
		AddAssertion(c.shutdownTimeout > 0, errors.ErrInvalidShutdownTimeout.Error()).
		Validate()
}

// Name returns the server name advertised to MCP clients
func (c *Config) Name() string {
	return c.name
}

// Version returns the server version advertised to MCP clients
func (c *Config) Version() string {
	return c.version
}

// ListenAddr returns the TCP address the HTTP listener binds to
func (c *Config) ListenAddr() string {
	return c.listenAddr
}

// Logger returns the configured logger
func (c *Config) Logger() log.Logger {
	return c.logger
}

// ShutdownTimeout returns the graceful shutdown timeout
func (c *Config) ShutdownTimeout() time.Duration {
	return c.shutdownTimeout
}
