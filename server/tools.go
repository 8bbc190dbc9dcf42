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
	goerrors "errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zenclock/pomodoro/errors"
	"github.com/zenclock/pomodoro/internal/validation"
	"github.com/zenclock/pomodoro/timer"
)

const (
	invalidDurationMessage = "Provide a duration greater than 0."
	notRunningMessage      = "Timer is not running."
	startedMessage         = "Timer started."
	stoppedMessage         = "Timer stopped."
	updatedMessage         = "Timer updated."
)

// DurationArgs is the input of the start_timer and edit_timer tools.
type DurationArgs struct {
	Minutes int `json:"minutes,omitempty" jsonschema:"Whole minutes to count down; defaults to 0"`
	Seconds int `json:"seconds,omitempty" jsonschema:"Whole seconds to count down; defaults to 0"`
}

// EmptyArgs is the input of tools that take no arguments.
type EmptyArgs struct{}

// TimerResult carries a confirmation message plus the timer snapshot.
type TimerResult struct {
	Message          string `json:"message"`
	IsRunning        bool   `json:"isRunning"`
	DurationMs       int64  `json:"durationMs"`
	RemainingMs      int64  `json:"remainingMs"`
	RemainingSeconds int64  `json:"remainingSeconds"`
}

// SnapshotResult carries the timer snapshot alone.
type SnapshotResult struct {
	IsRunning        bool  `json:"isRunning"`
	DurationMs       int64 `json:"durationMs"`
	RemainingMs      int64 `json:"remainingMs"`
	RemainingSeconds int64 `json:"remainingSeconds"`
}

// registerTools adds the four timer tools to the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_timer",
		Description: "Start the pomodoro timer for the given minutes and seconds. Restarts the countdown if a timer is already running.",
	}, s.handleStartTimer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "stop_timer",
		Description: "Stop the running pomodoro timer, preserving the remaining time.",
	}, s.handleStopTimer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "edit_timer",
		Description: "Change the pomodoro timer duration. A running timer restarts its countdown at the new duration; an idle timer keeps it pre-loaded.",
	}, s.handleEditTimer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_timer",
		Description: "Get the current pomodoro timer state.",
	}, s.handleGetTimer)
}

func (s *Server) handleStartTimer(_ context.Context, _ *mcp.CallToolRequest, args DurationArgs) (*mcp.CallToolResult, any, error) {
	if err := validateDuration(args); err != nil {
		s.logger.Warnf("rejected start_timer input: %v", err)
		return nil, newTimerResult(invalidDurationMessage, s.timer.Get()), nil
	}

	snapshot, err := s.timer.Start(args.Minutes, args.Seconds)
	if err != nil {
		if goerrors.Is(err, errors.ErrInvalidDuration) {
			return nil, newTimerResult(invalidDurationMessage, snapshot), nil
		}
		return nil, nil, err
	}

	s.logger.Debugf("timer started: %dms", snapshot.DurationMs)
	return nil, newTimerResult(startedMessage, snapshot), nil
}

func (s *Server) handleStopTimer(context.Context, *mcp.CallToolRequest, EmptyArgs) (*mcp.CallToolResult, any, error) {
	snapshot, stopped := s.timer.Stop()
	if !stopped {
		return nil, newTimerResult(notRunningMessage, snapshot), nil
	}

	s.logger.Debugf("timer stopped with %dms remaining", snapshot.RemainingMs)
	return nil, newTimerResult(stoppedMessage, snapshot), nil
}

func (s *Server) handleEditTimer(_ context.Context, _ *mcp.CallToolRequest, args DurationArgs) (*mcp.CallToolResult, any, error) {
	if err := validateDuration(args); err != nil {
		s.logger.Warnf("rejected edit_timer input: %v", err)
		return nil, newTimerResult(invalidDurationMessage, s.timer.Get()), nil
	}

	snapshot, err := s.timer.Edit(args.Minutes, args.Seconds)
	if err != nil {
		if goerrors.Is(err, errors.ErrInvalidDuration) {
			return nil, newTimerResult(invalidDurationMessage, snapshot), nil
		}
		return nil, nil, err
	}

	s.logger.Debugf("timer duration set to %dms", snapshot.DurationMs)
	return nil, newTimerResult(updatedMessage, snapshot), nil
}

func (s *Server) handleGetTimer(context.Context, *mcp.CallToolRequest, EmptyArgs) (*mcp.CallToolResult, any, error) {
	return nil, newSnapshotResult(s.timer.Get()), nil
}

// validateDuration rejects negative minute or second inputs before they
// reach the timer core.
func validateDuration(args DurationArgs) error {
	return validation.
		New(validation.FailFast()).
		AddAssertion(args.Minutes >= 0, "minutes must not be negative").
		AddAssertion(args.Seconds >= 0, "seconds must not be negative").
		Validate()
}

func newTimerResult(message string, snapshot timer.Snapshot) TimerResult {
	return TimerResult{
		Message:          message,
		IsRunning:        snapshot.IsRunning,
		DurationMs:       snapshot.DurationMs,
		RemainingMs:      snapshot.RemainingMs,
		RemainingSeconds: snapshot.RemainingSeconds,
	}
}

func newSnapshotResult(snapshot timer.Snapshot) SnapshotResult {
	return SnapshotResult{
		IsRunning:        snapshot.IsRunning,
		DurationMs:       snapshot.DurationMs,
		RemainingMs:      snapshot.RemainingMs,
		RemainingSeconds: snapshot.RemainingSeconds,
	}
}
