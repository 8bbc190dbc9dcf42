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

package timer

import "time"

// Snapshot is a point-in-time read-only view of the timer returned to callers.
type Snapshot struct {
	IsRunning        bool  `json:"isRunning"`
	DurationMs       int64 `json:"durationMs"`
	RemainingMs      int64 `json:"remainingMs"`
	RemainingSeconds int64 `json:"remainingSeconds"`
}

// computeRemaining derives the true remaining duration at the given instant.
// While the timer is running the stored remaining value is stale; the
// authoritative value is the configured duration minus the elapsed time,
// floored at zero.
func computeRemaining(running bool, duration, remaining time.Duration, startedAt, now time.Time) time.Duration {
	if !running {
		return remaining
	}
	left := duration - now.Sub(startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// buildSnapshot maps the timer fields plus an instant to a Snapshot. It is
// pure: callable at any time, including right after a completion fired.
func buildSnapshot(running bool, duration, remaining time.Duration, startedAt, now time.Time) Snapshot {
	left := computeRemaining(running, duration, remaining, startedAt, now).Milliseconds()
	return Snapshot{
		IsRunning:        running,
		DurationMs:       duration.Milliseconds(),
		RemainingMs:      left,
		RemainingSeconds: (left + 999) / 1000,
	}
}
