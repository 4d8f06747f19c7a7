package startup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wholesalelens/lenscli/internal/client/actor"
	"github.com/wholesalelens/lenscli/internal/client/route"
	"github.com/wholesalelens/lenscli/internal/common"
)

func TestCompute_Progression(t *testing.T) {
	tests := []struct {
		name      string
		snap      Snapshot
		wantStage Stage
		wantKind  Kind // zero value means no error expected
	}{
		{
			name:      "identity still restoring",
			snap:      Snapshot{IdentityInitializing: true},
			wantStage: StageIdentityInit,
		},
		{
			name:      "signed out",
			snap:      Snapshot{Authenticated: false},
			wantStage: StageIdentityInit,
		},
		{
			name:      "authenticated, actor constructing",
			snap:      Snapshot{Authenticated: true, Actor: actor.State{Fetching: true}, Route: route.ClassNormal},
			wantStage: StageActorInit,
		},
		{
			name: "actor construction failed",
			snap: Snapshot{
				Authenticated: true,
				Actor:         actor.State{Err: common.ErrUnavailable},
				Route:         route.ClassNormal,
			},
			wantStage: StageActorInit,
			wantKind:  KindNetwork,
		},
		{
			name: "actor ready, profile pending",
			snap: Snapshot{
				Authenticated: true,
				Actor:         actor.State{Exists: true, Ready: true},
				Route:         route.ClassNormal,
			},
			wantStage: StageProfileFetch,
		},
		{
			name: "profile settled",
			snap: Snapshot{
				Authenticated: true,
				Actor:         actor.State{Exists: true, Ready: true},
				Route:         route.ClassNormal,
				Profile:       ProfileQuery{Settled: true},
			},
			wantStage: StageReady,
		},
		{
			name: "profile settled with error",
			snap: Snapshot{
				Authenticated: true,
				Actor:         actor.State{Exists: true, Ready: true},
				Route:         route.ClassNormal,
				Profile:       ProfileQuery{Settled: true, Err: common.ErrTimeout},
			},
			wantStage: StageReady,
			wantKind:  KindTimeout,
		},
		{
			name: "payment route bypasses profile gating",
			snap: Snapshot{
				Authenticated: true,
				Actor:         actor.State{Exists: true, Ready: true},
				Route:         route.ClassPaymentSuccess,
				// Profile fetch never settled; the shortcut must not wait.
			},
			wantStage: StageReady,
		},
		{
			name: "payment route still requires ready actor",
			snap: Snapshot{
				Authenticated: true,
				Actor:         actor.State{Fetching: true},
				Route:         route.ClassPaymentFailure,
			},
			wantStage: StageActorInit,
		},
		{
			name: "sign-out regresses from anywhere",
			snap: Snapshot{
				Authenticated: false,
				Actor:         actor.State{Exists: true, Ready: true},
				Route:         route.ClassNormal,
				Profile:       ProfileQuery{Settled: true},
			},
			wantStage: StageIdentityInit,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.snap)
			require.Equal(t, tc.wantStage, got.Stage)
			if tc.wantKind == "" {
				require.Nil(t, got.Err)
			} else {
				require.NotNil(t, got.Err)
				require.Equal(t, tc.wantKind, got.Err.Kind)
			}
		})
	}
}

func TestCompute_ProfileErrorTaggedWithProfileStage(t *testing.T) {
	got := Compute(Snapshot{
		Authenticated: true,
		Actor:         actor.State{Exists: true, Ready: true},
		Route:         route.ClassNormal,
		Profile:       ProfileQuery{Settled: true, Err: errors.New("boom")},
	})
	require.NotNil(t, got.Err)
	require.Equal(t, StageProfileFetch, got.Err.Stage)
	require.Equal(t, KindUnexpected, got.Err.Kind)
}
