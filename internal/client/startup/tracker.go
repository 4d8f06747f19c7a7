package startup

import (
	"context"
	"sync"
	"time"

	"github.com/wholesalelens/lenscli/internal/common"
	"github.com/wholesalelens/lenscli/internal/logging"
)

const defaultWatchdogInterval = 30 * time.Second

// Tracker holds the latest derived Status and runs the startup watchdog.
//
// The watchdog arms when authentication first succeeds and disarms when the
// stage reaches ready or the user signs out. It does not fire while the
// stage is profile-fetch: first-time setup legitimately sits there for as
// long as the user takes, and the profile fetch carries its own dedicated
// timeout anyway.
type Tracker struct {
	log logging.Logger

	mu       sync.Mutex
	interval time.Duration
	status   Status
	watchdog *time.Timer
	armed    bool
	wdErr    *Error
}

func NewTracker(interval time.Duration, log logging.Logger) *Tracker {
	if interval <= 0 {
		interval = defaultWatchdogInterval
	}
	return &Tracker{interval: interval, log: log, status: Status{Stage: StageIdentityInit}}
}

// Observe recomputes the status from a snapshot and manages the watchdog.
func (t *Tracker) Observe(s Snapshot) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := Compute(s)

	switch {
	case !s.Authenticated:
		t.disarmLocked()
		t.wdErr = nil
	case st.Stage == StageReady && st.Err == nil:
		t.disarmLocked()
		t.wdErr = nil
	case st.Err == nil && !t.armed && t.wdErr == nil:
		t.armLocked()
	}

	// A pending watchdog error is kept until a retry or sign-out clears it,
	// but a real component error wins over the synthesized one.
	if st.Err == nil && t.wdErr != nil {
		st.Err = t.wdErr
	}

	t.status = st
	return st
}

// Status returns the last derived status.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// ClearError drops the synthesized watchdog error and rearms so a retry gets
// a fresh stuck-detection window.
func (t *Tracker) ClearError() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.wdErr != nil {
		t.wdErr = nil
		t.status.Err = nil
	}
	if t.status.Err == nil && t.status.Stage != StageReady && t.status.Stage != StageIdentityInit {
		t.armLocked()
	}
}

// Reset returns the tracker to identity-init. Used on sign-out.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.disarmLocked()
	t.wdErr = nil
	t.status = Status{Stage: StageIdentityInit}
}

func (t *Tracker) armLocked() {
	if t.armed {
		return
	}
	t.armed = true
	if t.watchdog == nil {
		t.watchdog = time.AfterFunc(t.interval, t.fire)
	} else {
		t.watchdog.Reset(t.interval)
	}
}

func (t *Tracker) disarmLocked() {
	t.armed = false
	if t.watchdog != nil {
		t.watchdog.Stop()
	}
}

// fire converts "stuck too long" into a surfaced timeout error tagged with
// the stage active at expiry.
func (t *Tracker) fire() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.armed {
		return
	}
	stage := t.status.Stage
	if stage == StageReady {
		t.armed = false
		return
	}
	if stage == StageProfileFetch {
		// Legitimate waiting time; give it another window.
		t.watchdog.Reset(t.interval)
		return
	}

	t.armed = false
	t.wdErr = NewError(stage, common.ErrTimeout)
	if t.status.Err == nil {
		t.status.Err = t.wdErr
	}
	t.log.Warn(context.Background(), "startup watchdog fired", "stage", string(stage))
}
