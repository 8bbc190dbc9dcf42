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

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
	"go.uber.org/atomic"

	"github.com/zenclock/pomodoro/errors"
	"github.com/zenclock/pomodoro/log"
)

// CompletionFunc runs when a scheduled completion fires.
type CompletionFunc func()

// Handle is the scheduler's cancelable reference to a not-yet-fired completion.
type Handle string

// NoHandle is the zero Handle. It refers to no scheduled completion.
const NoHandle Handle = ""

// Scheduler schedules a completion callback to run once after a delay.
// A scheduled completion fires at most once; canceling an already-fired or
// already-canceled handle is a no-op.
type Scheduler interface {
	// ScheduleOnce schedules fn to run once after the given delay and
	// returns a handle that cancels it.
	ScheduleOnce(delay time.Duration, fn CompletionFunc) (Handle, error)
	// Cancel cancels the completion referenced by the handle. It is idempotent.
	Cancel(handle Handle)
}

// QuartzScheduler implements Scheduler on top of a quartz job scheduler.
type QuartzScheduler struct {
	// helps lock concurrent access
	mu sync.Mutex
	// underlying Scheduler
	quartzScheduler quartz.Scheduler
	// states whether the quartzScheduler has started or not
	started *atomic.Bool
	// define the logger
	logger log.Logger
	// define the shutdown timeout
	stopTimeout time.Duration
}

// enforce compilation and linter error
var _ Scheduler = (*QuartzScheduler)(nil)

// NewQuartzScheduler creates an instance of QuartzScheduler
func NewQuartzScheduler(logger log.Logger, stopTimeout time.Duration) *QuartzScheduler {
	// create an instance of quartz scheduler with logger off
	quartzScheduler, _ := quartz.NewStdScheduler(quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))

	return &QuartzScheduler{
		mu:              sync.Mutex{},
		started:         atomic.NewBool(false),
		quartzScheduler: quartzScheduler,
		logger:          logger,
		stopTimeout:     stopTimeout,
	}
}

// Start starts the scheduler
func (x *QuartzScheduler) Start(ctx context.Context) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.logger.Info("starting completion scheduler...")
	x.quartzScheduler.Start(ctx)
	x.started.Store(x.quartzScheduler.IsStarted())
	x.logger.Info("completion scheduler started.:)")
}

// Stop stops the scheduler
func (x *QuartzScheduler) Stop(ctx context.Context) {
	if !x.started.Load() {
		return
	}

	x.logger.Info("stopping completion scheduler...")
	x.mu.Lock()
	defer x.mu.Unlock()
	_ = x.quartzScheduler.Clear()
	x.quartzScheduler.Stop()
	x.started.Store(x.quartzScheduler.IsStarted())

	ctx, cancel := context.WithTimeout(ctx, x.stopTimeout)
	defer cancel()
	x.quartzScheduler.Wait(ctx)

	x.logger.Info("completion scheduler stopped...:)")
}

// ScheduleOnce schedules fn to run once after the given delay.
func (x *QuartzScheduler) ScheduleOnce(delay time.Duration, fn CompletionFunc) (Handle, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.started.Load() {
		return NoHandle, errors.ErrSchedulerNotStarted
	}

	job := job.NewFunctionJob[bool](
		func(context.Context) (bool, error) {
			fn()
			return true, nil
		},
	)

	key := newJobKey()
	detail := quartz.NewJobDetail(job, quartz.NewJobKey(key))
	if err := x.quartzScheduler.ScheduleJob(detail, quartz.NewRunOnceTrigger(delay)); err != nil {
		return NoHandle, err
	}
	return Handle(key), nil
}

// Cancel cancels the completion referenced by the handle. Canceling a fired,
// canceled or zero handle is a no-op.
func (x *QuartzScheduler) Cancel(handle Handle) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if handle == NoHandle {
		return
	}
	// a run-once job that has already fired is gone from the scheduler;
	// the resulting not-found error is irrelevant here
	_ = x.quartzScheduler.DeleteJob(quartz.NewJobKey(string(handle)))
}

// newJobKey creates a new job key
func newJobKey() string {
	return uuid.NewString()
}
