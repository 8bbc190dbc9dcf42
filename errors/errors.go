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

// Package errors defines the sentinel errors of the pomodoro service.
package errors

import "errors"

var (
	// ErrInvalidDuration is returned when a requested timer duration is zero
	// or negative. It is the only failure ever surfaced to tool callers and
	// is reported as a message alongside an unchanged snapshot.
	ErrInvalidDuration = errors.New("duration must be greater than zero")

	// ErrSchedulerNotStarted is returned when attempting to schedule a
	// completion before the scheduler has started.
	ErrSchedulerNotStarted = errors.New("scheduler has not started")

	// ErrServerStarted is returned when starting a server that is already running.
	ErrServerStarted = errors.New("server is already started")

	// ErrServerNotStarted is returned when stopping a server that has not been started.
	ErrServerNotStarted = errors.New("server has not started")

	// ErrInvalidShutdownTimeout is returned when the configured shutdown
	// timeout is zero or negative.
	ErrInvalidShutdownTimeout = errors.New("shutdown timeout must be greater than zero")
)
