package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
)

// The daily freeze fires just before the day shift starts.
const (
	freezeHour   = 7
	freezeMinute = 59
)

// FreezeScheduler arms a one-shot timer for the next 07:59 and re-arms
// itself after each firing. A single instance is created at startup;
// Start and Stop bound its lifetime.
type FreezeScheduler struct {
	freeze FreezeService
	loc    *time.Location
	logger *zap.Logger

	now func() time.Time // test hook

	mu        sync.Mutex
	timer     *time.Timer
	nextRunAt time.Time
	started   bool

	running atomic.Bool // reentrancy guard for the automatic path
}

// NewFreezeScheduler creates the scheduler. loc is the civil timezone
// the 07:59 trigger is evaluated in.
func NewFreezeScheduler(freeze FreezeService, loc *time.Location, logger *zap.Logger) *FreezeScheduler {
	if loc == nil {
		loc = time.Local
	}
	return &FreezeScheduler{
		freeze: freeze,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// Start arms the timer for the next trigger time. Calling Start on a
// started scheduler is a no-op.
func (s *FreezeScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.armLocked()
}

// Stop cancels the pending timer. A firing already in progress is not
// interrupted.
func (s *FreezeScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.nextRunAt = time.Time{}
}

// Status reports whether the scheduler is armed and when it fires next.
func (s *FreezeScheduler) Status() *dto.FreezeSchedulerStatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := &dto.FreezeSchedulerStatusResponse{Running: s.started}
	if s.started && !s.nextRunAt.IsZero() {
		status.NextRunAt = s.nextRunAt.Format(time.RFC3339)
	}
	return status
}

// RunManually freezes the given date immediately, outside the timer
// path. Errors propagate to the caller instead of being swallowed.
func (s *FreezeScheduler) RunManually(ctx context.Context, date time.Time) (*dto.FreezeResponse, error) {
	return s.freeze.Freeze(ctx, date)
}

// NextRunAfter returns the next trigger instant strictly after t.
func (s *FreezeScheduler) NextRunAfter(t time.Time) time.Time {
	local := t.In(s.loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), freezeHour, freezeMinute, 0, 0, s.loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// armLocked schedules the next firing. Callers hold s.mu.
func (s *FreezeScheduler) armLocked() {
	next := s.NextRunAfter(s.now())
	s.nextRunAt = next
	s.timer = time.AfterFunc(next.Sub(s.now()), s.fire)
	s.logger.Info("freeze scheduler armed", zap.Time("next_run_at", next))
}

// fire runs the daily freeze and re-arms. A firing that overlaps a
// still-running previous one is skipped rather than stacked.
func (s *FreezeScheduler) fire() {
	if s.running.CompareAndSwap(false, true) {
		func() {
			defer s.running.Store(false)
			date := s.now().In(s.loc)
			if _, err := s.freeze.Freeze(context.Background(), date); err != nil {
				// The next firing retries tomorrow; the manual endpoint
				// covers today.
				s.logger.Error("scheduled freeze failed",
					zap.String("date", date.Format("2006-01-02")), zap.Error(err))
			}
		}()
	} else {
		s.logger.Warn("scheduled freeze skipped, previous run still in progress")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.armLocked()
	}
}
