package startup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wholesalelens/lenscli/internal/client/actor"
	"github.com/wholesalelens/lenscli/internal/client/cache"
	"github.com/wholesalelens/lenscli/internal/client/identity"
	"github.com/wholesalelens/lenscli/internal/client/models"
	"github.com/wholesalelens/lenscli/internal/client/profile"
	"github.com/wholesalelens/lenscli/internal/common"
)

const pingMethod = "/wholesalelens.Backend/ping"

// fakeTransport is an actor.Conn whose ping behavior is scripted.
type fakeTransport struct {
	pingErr error
	closed  bool
}

func (f *fakeTransport) Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
	if method == pingMethod {
		return f.pingErr
	}
	return nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

// fakeProfileBackend scripts the resolver's view of the backend.
type fakeProfileBackend struct {
	getCalls int
	getP     *models.Profile
	getErr   error
	hasRet   bool
	hasErr   error
}

func (f *fakeProfileBackend) GetCallerUserProfile(ctx context.Context) (*models.Profile, error) {
	f.getCalls++
	return f.getP, f.getErr
}

func (f *fakeProfileBackend) HasProfile(ctx context.Context) (bool, error) {
	return f.hasRet, f.hasErr
}

func (f *fakeProfileBackend) InitializeProfile(ctx context.Context) (*models.Profile, error) {
	return &models.Profile{}, nil
}

func (f *fakeProfileBackend) SaveCallerUserProfile(ctx context.Context, p models.Profile) error {
	return nil
}

type fixture struct {
	sess      *Session
	rec       *Recovery
	idp       *identity.Provider
	store     *cache.Store
	actors    *actor.Manager
	backend   *fakeProfileBackend
	transport *fakeTransport
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := testLogger()

	f := &fixture{
		idp:       identity.NewProvider(log),
		store:     cache.NewStore(),
		backend:   &fakeProfileBackend{},
		transport: &fakeTransport{},
	}
	f.idp.Restore(context.Background(), "")

	f.actors = actor.NewManager("127.0.0.1:9090", "", f.idp, f.store, log)
	f.actors.Dial = func(ctx context.Context, target string, id *identity.Identity) (actor.Conn, error) {
		return f.transport, nil
	}

	resolver := profile.NewResolver(f.backend, f.store, log)
	tracker := NewTracker(time.Hour, log) // effectively disabled unless a test shortens it
	f.sess = NewSession(f.idp, f.actors, resolver, tracker, f.store, log)
	f.rec = NewRecovery(f.sess)
	return f
}

func (f *fixture) signIn(t *testing.T, principal string) {
	t.Helper()
	claims := jwt.MapClaims{"sub": principal, "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = f.idp.Login(context.Background(), token)
	require.NoError(t, err)
}

func TestSession_SignedOutStaysAtIdentityInit(t *testing.T) {
	f := newFixture(t)

	st := f.sess.Refresh(context.Background())
	require.Equal(t, StageIdentityInit, st.Stage)
	require.Nil(t, st.Err)
	require.False(t, f.sess.Gates().IsAuthenticated)
}

func TestSession_FirstTimeUserReachesSetupWithoutError(t *testing.T) {
	f := newFixture(t)
	f.backend.getP = nil // authenticated, but no profile record yet
	f.signIn(t, "user-a")
	f.sess.SetLocation("https://app.example.com/dashboard")

	st := f.rec.Refresh(context.Background())

	require.Equal(t, StageReady, st.Stage)
	require.Nil(t, st.Err, "a first-time user must never see a startup error")

	g := f.sess.Gates()
	require.True(t, g.IsAuthenticated)
	require.True(t, g.ActorReady)
	require.True(t, g.NeedsSetup)
	require.Nil(t, g.Profile)
}

func TestSession_ReturningUserReachesReady(t *testing.T) {
	f := newFixture(t)
	f.backend.getP = &models.Profile{Name: "Dana", MembershipTier: models.TierPro}
	f.signIn(t, "user-a")

	st := f.rec.Refresh(context.Background())
	require.Equal(t, StageReady, st.Stage)
	require.Nil(t, st.Err)

	g := f.sess.Gates()
	require.False(t, g.NeedsSetup)
	require.NotNil(t, g.Profile)
	require.Equal(t, "Dana", g.Profile.Name)
}

func TestSession_ActorFailureClassifiedNetwork_RetryReconnects(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "user-a")
	f.transport.pingErr = status.Error(codes.Unavailable, "network unreachable")

	st := f.sess.Refresh(context.Background())
	require.Equal(t, StageActorInit, st.Stage)
	require.NotNil(t, st.Err)
	require.Equal(t, KindNetwork, st.Err.Kind)
	require.Equal(t, StageActorInit, st.Err.Stage)

	// The backend recovers; retry reconstructs the connection.
	f.transport.pingErr = nil
	st = f.rec.Retry(context.Background())
	require.Equal(t, StageReady, st.Stage)
	require.Nil(t, st.Err)
}

func TestSession_ProfileTimeoutRetryRefetchesProfileOnly(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "user-a")
	f.backend.getErr = common.ErrTimeout

	st := f.sess.Refresh(context.Background())
	require.NotNil(t, st.Err)
	require.Equal(t, KindTimeout, st.Err.Kind)
	require.Equal(t, StageProfileFetch, st.Err.Stage)
	require.Equal(t, 1, f.backend.getCalls)

	// Retry purges the profile entry and refetches without rebuilding the
	// connection.
	f.backend.getErr = nil
	f.backend.getP = &models.Profile{Name: "Dana"}
	before := f.transport
	st = f.rec.Retry(context.Background())
	require.Equal(t, StageReady, st.Stage)
	require.Nil(t, st.Err)
	require.Equal(t, 2, f.backend.getCalls)
	require.False(t, before.closed, "profile retry must not tear down the actor")
}

func TestSession_AuthErrorNeverRetriedInPlace(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "user-a")
	f.backend.getErr = common.ErrUnauthorized
	f.backend.hasRet = true // profile exists, so the rejection is genuine

	st := f.sess.Refresh(context.Background())
	require.NotNil(t, st.Err)
	require.Equal(t, KindAuth, st.Err.Kind)
	calls := f.backend.getCalls

	st = f.rec.Retry(context.Background())

	// Retry diverted to sign-out: no re-issue of the failing call, local
	// state fully reset.
	require.Equal(t, calls, f.backend.getCalls)
	require.Equal(t, StageIdentityInit, st.Stage)
	require.Nil(t, f.idp.Current())
	require.Zero(t, f.store.Len())
}

func TestRecovery_AutoSignOutOnAuthError(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "user-a")
	f.backend.getErr = common.ErrUnauthorized
	f.backend.hasRet = true

	st := f.rec.Refresh(context.Background())

	require.Equal(t, StageIdentityInit, st.Stage)
	require.Nil(t, st.Err)
	require.Nil(t, f.idp.Current())
}

func TestSession_PaymentRouteBypassesProfileFetch(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "user-a")
	// A profile fetch would fail loudly; the bypass must never attempt it.
	f.backend.getErr = errors.New("must not be called")
	f.sess.SetLocation("https://app.example.com/payment-success?session_id=cs_1")

	st := f.rec.Refresh(context.Background())

	require.Equal(t, StageReady, st.Stage)
	require.Nil(t, st.Err)
	require.Zero(t, f.backend.getCalls)
}

func TestSession_NavigatingOffPaymentRouteResumesProfileFetch(t *testing.T) {
	f := newFixture(t)
	f.backend.getP = &models.Profile{Name: "Dana"}
	f.signIn(t, "user-a")
	f.sess.SetLocation("https://app.example.com/payment-success?session_id=cs_1")

	st := f.rec.Refresh(context.Background())
	require.Equal(t, StageReady, st.Stage)
	require.Zero(t, f.backend.getCalls)

	f.sess.SetLocation("https://app.example.com/dashboard")
	st = f.rec.Refresh(context.Background())
	require.Equal(t, StageReady, st.Stage)
	require.Equal(t, 1, f.backend.getCalls)
	require.NotNil(t, f.sess.Gates().Profile)
}

func TestSession_ReloginToOtherPrincipalResolvesFreshProfile(t *testing.T) {
	f := newFixture(t)
	f.backend.getP = &models.Profile{Name: "Alice"}
	f.signIn(t, "user-a")

	st := f.rec.Refresh(context.Background())
	require.Equal(t, StageReady, st.Stage)
	require.Equal(t, "Alice", f.sess.Gates().Profile.Name)

	// Direct re-login without an intervening sign-out. The settled profile
	// belongs to the previous principal and must not be served.
	f.backend.getP = &models.Profile{Name: "Bob"}
	f.signIn(t, "user-b")

	st = f.rec.Refresh(context.Background())
	require.Equal(t, StageReady, st.Stage)
	require.Equal(t, 2, f.backend.getCalls)
	require.Equal(t, "Bob", f.sess.Gates().Profile.Name)
}

func TestRecovery_SignOutResetsEverything(t *testing.T) {
	f := newFixture(t)
	f.backend.getP = &models.Profile{Name: "Dana"}
	f.signIn(t, "user-a")

	st := f.rec.Refresh(context.Background())
	require.Equal(t, StageReady, st.Stage)
	f.store.Set("user-a", "deals", []string{"d1"})

	f.rec.SignOut(context.Background())

	require.Nil(t, f.idp.Current())
	require.Zero(t, f.store.Len())
	require.True(t, f.transport.closed)
	require.Equal(t, StageIdentityInit, f.sess.tracker.Status().Stage)

	st = f.sess.Refresh(context.Background())
	require.Equal(t, StageIdentityInit, st.Stage)
	require.False(t, f.sess.Gates().IsAuthenticated)
}
