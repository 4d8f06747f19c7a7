package actor

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/wholesalelens/lenscli/internal/client/cache"
	"github.com/wholesalelens/lenscli/internal/client/identity"
	"github.com/wholesalelens/lenscli/internal/common"
	"github.com/wholesalelens/lenscli/internal/logging"
)

const defaultPingTimeout = 10 * time.Second

// DialFunc opens a transport bound to the given identity. The default is
// gRPC; embedders can substitute their own transport.
type DialFunc func(ctx context.Context, target string, id *identity.Identity) (Conn, error)

func grpcDial(_ context.Context, target string, id *identity.Identity) (Conn, error) {
	token := ""
	if id != nil && !id.IsAnonymous() {
		token = id.Token
	}
	return grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(delegationInterceptor(token)),
	)
}

// State describes the connection for startup gating. Ready implies Exists,
// not Fetching, and no construction error.
type State struct {
	Exists   bool
	Fetching bool
	Ready    bool
	Err      error
}

// Manager owns the session's single current actor. Construction is lazy and
// cached per identity; when the bound identity changes, everything cached
// under the old identity is invalidated before the new actor is published.
type Manager struct {
	target      string
	adminToken  string
	idp         *identity.Provider
	store       *cache.Store
	log         logging.Logger
	pingTimeout time.Duration

	// Dial opens the transport; overriding it swaps the wire protocol.
	Dial DialFunc

	mu       sync.Mutex
	current  *Actor
	key      string
	fetching bool
	waitCh   chan struct{}
	lastErr  error
}

func NewManager(target, adminToken string, idp *identity.Provider, store *cache.Store, log logging.Logger) *Manager {
	return &Manager{
		target:      target,
		adminToken:  adminToken,
		idp:         idp,
		store:       store,
		log:         log,
		Dial:        grpcDial,
		pingTimeout: defaultPingTimeout,
	}
}

// identityKey resolves the cache/connection key for the current identity.
func (m *Manager) identityKey() string {
	id := m.idp.Current()
	if id == nil || id.IsAnonymous() {
		return common.AnonymousPrincipal
	}
	return id.Principal
}

// State reports the current connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := State{
		Exists:   m.current != nil,
		Fetching: m.fetching,
		Err:      m.lastErr,
	}
	s.Ready = s.Exists && !s.Fetching && s.Err == nil && m.key == m.identityKeyLocked()
	return s
}

// identityKeyLocked mirrors identityKey for callers already holding mu.
// Provider has its own lock, so this does not recurse on m.mu.
func (m *Manager) identityKeyLocked() string {
	return m.identityKey()
}

// Get returns the actor for the current identity, constructing it when
// missing or when the identity changed since the last construction.
func (m *Manager) Get(ctx context.Context) (*Actor, error) {
	if m.idp.Initializing() {
		return nil, common.ErrNoIdentity
	}

	for {
		key := m.identityKey()

		m.mu.Lock()
		if m.current != nil && m.key == key && m.lastErr == nil {
			a := m.current
			m.mu.Unlock()
			return a, nil
		}
		if m.fetching {
			// Another caller is constructing; wait for it and re-check.
			ch := m.waitCh
			m.mu.Unlock()
			select {
			case <-ch:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue
		}
		m.fetching = true
		m.lastErr = nil
		m.waitCh = make(chan struct{})
		m.mu.Unlock()

		a, err := m.construct(ctx, key)

		m.mu.Lock()
		m.fetching = false
		close(m.waitCh)
		if err != nil {
			m.lastErr = err
			m.mu.Unlock()
			return nil, err
		}

		// Invalidate everything the previous identity cached BEFORE the new
		// actor becomes visible, so no consumer can read stale cross-identity
		// data through a ready connection.
		if m.key != "" && m.key != key {
			m.store.InvalidateNamespace(m.key)
		}
		if m.current != nil {
			_ = m.current.close()
		}
		m.current = a
		m.key = key
		m.mu.Unlock()

		m.log.Info(ctx, "actor ready", "principal", key)
		return a, nil
	}
}

// construct dials, verifies readiness with a ping, and best-effort elevates
// privileges when an admin token is configured.
func (m *Manager) construct(ctx context.Context, key string) (*Actor, error) {
	conn, err := m.Dial(ctx, m.target, m.idp.Current())
	if err != nil {
		return nil, mapError(err)
	}

	a := &Actor{conn: conn, principal: key}

	pingCtx, cancel := context.WithTimeout(ctx, m.pingTimeout)
	defer cancel()
	if _, err := a.Invoke(pingCtx, "ping", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if m.adminToken != "" {
		if _, err := a.Invoke(ctx, "initializeAccessControl", map[string]any{"secret": m.adminToken}); err != nil {
			// Elevation failing must not fail the connection.
			m.log.Warn(ctx, "admin elevation failed, continuing without privileges", "error", err)
		}
	}

	return a, nil
}

// Reconnect discards the current handle and re-attempts construction with
// the same identity.
func (m *Manager) Reconnect(ctx context.Context) (*Actor, error) {
	m.mu.Lock()
	if m.current != nil {
		_ = m.current.close()
		m.current = nil
	}
	m.lastErr = nil
	m.mu.Unlock()

	return m.Get(ctx)
}

// Reset drops the connection without reconstructing. Used by sign-out.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		_ = m.current.close()
		m.current = nil
	}
	m.key = ""
	m.lastErr = nil
}
