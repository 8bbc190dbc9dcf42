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
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travisjeffery/go-dynaport"

	"github.com/zenclock/pomodoro/errors"
	"github.com/zenclock/pomodoro/log"
)

func TestServerLifecycle(t *testing.T) {
	ctx := context.Background()
	ports := dynaport.Get(1)
	listenAddr := fmt.Sprintf("127.0.0.1:%d", ports[0])

	config, err := NewConfig(listenAddr,
		WithLogger(log.DiscardLogger),
		WithShutdownTimeout(time.Second))
	require.NoError(t, err)

	server := New(config)
	require.NoError(t, server.Start(ctx))
	assert.Equal(t, listenAddr, server.ListenAddr())

	// starting twice is an error
	require.ErrorIs(t, server.Start(ctx), errors.ErrServerStarted)

	// the endpoint must become reachable
	endpoint := URL("127.0.0.1", ports[0]) + mountPath
	retrier := retry.NewRetrier(10, 50*time.Millisecond, time.Second)
	err = retrier.Run(func() error {
		response, err := http.Get(endpoint)
		if err != nil {
			return err
		}
		return response.Body.Close()
	})
	require.NoError(t, err)

	require.NoError(t, server.Stop(ctx))
	require.ErrorIs(t, server.Stop(ctx), errors.ErrServerNotStarted)
}

func TestServerCORSPreflight(t *testing.T) {
	ctx := context.Background()
	ports := dynaport.Get(1)
	listenAddr := fmt.Sprintf("127.0.0.1:%d", ports[0])

	config, err := NewConfig(listenAddr,
		WithLogger(log.DiscardLogger),
		WithShutdownTimeout(time.Second))
	require.NoError(t, err)

	server := New(config)
	require.NoError(t, server.Start(ctx))
	defer func() {
		require.NoError(t, server.Stop(ctx))
	}()

	endpoint := URL("127.0.0.1", ports[0]) + mountPath
	request, err := http.NewRequestWithContext(ctx, http.MethodOptions, endpoint, nil)
	require.NoError(t, err)

	var response *http.Response
	retrier := retry.NewRetrier(10, 50*time.Millisecond, time.Second)
	err = retrier.Run(func() error {
		response, err = http.DefaultClient.Do(request)
		return err
	})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, response.Body.Close())
	}()

	assert.Equal(t, http.StatusNoContent, response.StatusCode)
	assert.Equal(t, "*", response.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, response.Header.Get("Access-Control-Allow-Headers"), "Mcp-Session-Id")
}

func TestServerStartOnBusyPort(t *testing.T) {
	ctx := context.Background()
	ports := dynaport.Get(1)
	listenAddr := fmt.Sprintf("127.0.0.1:%d", ports[0])

	config, err := NewConfig(listenAddr,
		WithLogger(log.DiscardLogger),
		WithShutdownTimeout(time.Second))
	require.NoError(t, err)

	first := New(config)
	require.NoError(t, first.Start(ctx))
	defer func() {
		require.NoError(t, first.Stop(ctx))
	}()

	second := New(config)
	assert.Error(t, second.Start(ctx), "the port is already taken")
}

func TestURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8000", URL("127.0.0.1", 8000))
}
