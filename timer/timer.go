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

// Package timer implements a single mutable countdown timer with
// wall-clock-based remaining-time computation and one pending completion.
package timer

import (
	"fmt"
	"sync"
	"time"

	"github.com/zenclock/pomodoro/errors"
	"github.com/zenclock/pomodoro/internal/clock"
)

// Timer is the single mutable countdown timer. All operations are atomic
// with respect to one another; at most one completion is pending at any time.
type Timer struct {
	mu        sync.Mutex
	clock     clock.Clock
	scheduler Scheduler

	duration  time.Duration
	remaining time.Duration
	startedAt time.Time
	running   bool
	pending   Handle
	// generation identifies the pending completion; a fire that lost a
	// cancel race carries a stale generation and is discarded.
	generation uint64
}

// New creates an idle Timer that reads time from the given clock and
// schedules completions on the given scheduler.
func New(clock clock.Clock, scheduler Scheduler) *Timer {
	return &Timer{
		clock:     clock,
		scheduler: scheduler,
	}
}

// Duration converts whole minutes and seconds to a duration.
func Duration(minutes, seconds int) time.Duration {
	return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
}

// Start configures the timer for minutes and seconds and starts it,
// restarting whatever was running. A non-positive total duration fails with
// errors.ErrInvalidDuration and leaves the state untouched. The returned
// snapshot reflects the state after the transition (or the unchanged state
// on failure).
func (t *Timer) Start(minutes, seconds int) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	duration := Duration(minutes, seconds)
	if duration <= 0 {
		return t.snapshotLocked(now), errors.ErrInvalidDuration
	}

	t.cancelPendingLocked()
	if err := t.schedulePendingLocked(duration); err != nil {
		return t.snapshotLocked(now), fmt.Errorf("failed to start timer: %w", err)
	}

	t.duration = duration
	t.remaining = duration
	t.startedAt = now
	t.running = true
	return t.snapshotLocked(now), nil
}

// Stop halts a running timer, preserving the remaining duration computed at
// the instant of the call. Stopping an idle timer is a no-op; the second
// return value reports whether the timer was running.
func (t *Timer) Stop() (Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if !t.running {
		return t.snapshotLocked(now), false
	}

	t.cancelPendingLocked()
	t.remaining = computeRemaining(true, t.duration, t.remaining, t.startedAt, now)
	t.running = false
	t.startedAt = time.Time{}
	return t.snapshotLocked(now), true
}

// Edit replaces the configured duration. A running timer restarts its
// countdown at the new full duration; an idle timer stays idle with the new
// duration pre-loaded as the remaining value. A non-positive total duration
// fails with errors.ErrInvalidDuration and leaves the state untouched.
func (t *Timer) Edit(minutes, seconds int) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	duration := Duration(minutes, seconds)
	if duration <= 0 {
		return t.snapshotLocked(now), errors.ErrInvalidDuration
	}

	t.cancelPendingLocked()
	if t.running {
		if err := t.schedulePendingLocked(duration); err != nil {
			return t.snapshotLocked(now), fmt.Errorf("failed to edit timer: %w", err)
		}
		t.startedAt = now
	} else {
		t.startedAt = time.Time{}
	}

	t.duration = duration
	t.remaining = duration
	return t.snapshotLocked(now), nil
}

// Get returns the current snapshot without mutating state.
func (t *Timer) Get() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked(t.clock.Now())
}

// schedulePendingLocked installs a fresh completion after the given delay.
// The caller must hold the mutex and must have canceled the prior completion.
func (t *Timer) schedulePendingLocked(delay time.Duration) error {
	generation := t.generation + 1
	handle, err := t.scheduler.ScheduleOnce(delay, func() {
		t.complete(generation)
	})
	if err != nil {
		return err
	}
	t.generation = generation
	t.pending = handle
	return nil
}

// cancelPendingLocked cancels the pending completion, if any. The caller
// must hold the mutex.
func (t *Timer) cancelPendingLocked() {
	if t.pending != NoHandle {
		t.scheduler.Cancel(t.pending)
		t.pending = NoHandle
	}
}

// complete transitions the timer to the finished state. It runs on the
// scheduler's callback goroutine; a stale generation means the completion
// was canceled or superseded after dispatch and is a no-op.
func (t *Timer) complete(generation uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || generation != t.generation {
		return
	}

	t.running = false
	t.remaining = 0
	t.startedAt = time.Time{}
	t.pending = NoHandle
}

// snapshotLocked builds the snapshot at the given instant. The caller must
// hold the mutex.
func (t *Timer) snapshotLocked(now time.Time) Snapshot {
	return buildSnapshot(t.running, t.duration, t.remaining, t.startedAt, now)
}
