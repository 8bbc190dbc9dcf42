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

package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/zenclock/pomodoro/log"
	"github.com/zenclock/pomodoro/server"
)

const version = "0.1.0"

func main() {
	var listenAddr string
	var debug bool
	flag.StringVar(&listenAddr, "listen", "0.0.0.0:8000", "TCP address the server listens on")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	logger := log.Logger(log.DefaultLogger)
	if debug {
		logger = log.DebugLogger
	}

	config, err := server.NewConfig(listenAddr,
		server.WithLogger(logger),
		server.WithServerInfo("pomodoro", version))
	if err != nil {
		logger.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := server.New(config)
	if err := srv.Start(ctx); err != nil {
		logger.Fatal(err)
	}

	<-ctx.Done()
	if err := srv.Stop(context.Background()); err != nil {
		logger.Fatal(err)
	}
}
