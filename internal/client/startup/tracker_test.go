package startup

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wholesalelens/lenscli/internal/client/actor"
	"github.com/wholesalelens/lenscli/internal/client/route"
	"github.com/wholesalelens/lenscli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func authedActorInit() Snapshot {
	return Snapshot{
		Authenticated: true,
		Actor:         actor.State{Fetching: true},
		Route:         route.ClassNormal,
	}
}

func authedReady() Snapshot {
	return Snapshot{
		Authenticated: true,
		Actor:         actor.State{Exists: true, Ready: true},
		Route:         route.ClassNormal,
		Profile:       ProfileQuery{Settled: true},
	}
}

func TestTracker_NoErrorWhenStartupCompletesInTime(t *testing.T) {
	tr := NewTracker(40*time.Millisecond, testLogger())

	tr.Observe(authedActorInit())
	tr.Observe(authedReady())

	time.Sleep(80 * time.Millisecond)

	st := tr.Status()
	require.Equal(t, StageReady, st.Stage)
	require.Nil(t, st.Err)
}

func TestTracker_FiresWhileStuckInActorInit(t *testing.T) {
	tr := NewTracker(30*time.Millisecond, testLogger())

	tr.Observe(authedActorInit())
	time.Sleep(60 * time.Millisecond)

	st := tr.Status()
	require.NotNil(t, st.Err)
	require.Equal(t, KindTimeout, st.Err.Kind)
	require.Equal(t, StageActorInit, st.Err.Stage)

	// Exactly one error: the watchdog does not fire again.
	time.Sleep(60 * time.Millisecond)
	again := tr.Status()
	require.Equal(t, st.Err, again.Err)
}

func TestTracker_SuppressedDuringProfileFetch(t *testing.T) {
	tr := NewTracker(30*time.Millisecond, testLogger())

	tr.Observe(Snapshot{
		Authenticated: true,
		Actor:         actor.State{Exists: true, Ready: true},
		Route:         route.ClassNormal,
		// Profile unsettled: first-time setup can legitimately sit here.
	})
	time.Sleep(70 * time.Millisecond)

	st := tr.Status()
	require.Equal(t, StageProfileFetch, st.Stage)
	require.Nil(t, st.Err, "watchdog must not punish first-time onboarding latency")
}

func TestTracker_DisarmedOnSignOut(t *testing.T) {
	tr := NewTracker(30*time.Millisecond, testLogger())

	tr.Observe(authedActorInit())
	tr.Observe(Snapshot{Authenticated: false})

	time.Sleep(60 * time.Millisecond)
	st := tr.Status()
	require.Equal(t, StageIdentityInit, st.Stage)
	require.Nil(t, st.Err)
}

func TestTracker_ClearErrorRearms(t *testing.T) {
	tr := NewTracker(30*time.Millisecond, testLogger())

	tr.Observe(authedActorInit())
	time.Sleep(60 * time.Millisecond)
	require.NotNil(t, tr.Status().Err)

	tr.ClearError()
	require.Nil(t, tr.Status().Err)

	// Still stuck: a fresh window expires and fires again.
	time.Sleep(60 * time.Millisecond)
	st := tr.Status()
	require.NotNil(t, st.Err)
	require.Equal(t, KindTimeout, st.Err.Kind)
}

func TestTracker_WatchdogErrorOverlaysUntilCleared(t *testing.T) {
	tr := NewTracker(20*time.Millisecond, testLogger())

	tr.Observe(authedActorInit())
	time.Sleep(50 * time.Millisecond)

	// Recomputing the same stuck snapshot keeps surfacing the error.
	st := tr.Observe(authedActorInit())
	require.NotNil(t, st.Err)

	// Reaching ready clears it.
	st = tr.Observe(authedReady())
	require.Nil(t, st.Err)
}
