package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/wholesalelens/lenscli/internal/client/actor"
	"github.com/wholesalelens/lenscli/internal/client/api"
	"github.com/wholesalelens/lenscli/internal/client/cache"
	"github.com/wholesalelens/lenscli/internal/client/config"
	"github.com/wholesalelens/lenscli/internal/client/identity"
	"github.com/wholesalelens/lenscli/internal/client/profile"
	"github.com/wholesalelens/lenscli/internal/client/startup"
	"github.com/wholesalelens/lenscli/internal/logging"
)

// App wires the full client stack: identity provider, connection manager,
// typed API, profile flow and the startup session driving them.
type App struct {
	config *config.Config
	log    logging.Logger

	idp    *identity.Provider
	store  *cache.Store
	actors *actor.Manager
	api    *api.Client
	flow   *profile.Flow
	sess   *startup.Session
	rec    *startup.Recovery

	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewTintLogger(parseLevel(c.LogLevel))

	idp := identity.NewProvider(log)
	store := cache.NewStore()
	actors := actor.NewManager(c.GatewayAddr, c.AdminToken, idp, store, log)
	apiClient := api.NewClient(actors, store, log)

	resolver := profile.NewResolver(apiClient, store, log)
	resolver.Timeout = c.ProfileTimeout
	flow := profile.NewFlow(apiClient, resolver, log)

	tracker := startup.NewTracker(c.WatchdogInterval, log)
	sess := startup.NewSession(idp, actors, resolver, tracker, store, log)

	return &App{
		config: c,
		log:    log,
		idp:    idp,
		store:  store,
		actors: actors,
		api:    apiClient,
		flow:   flow,
		sess:   sess,
		rec:    startup.NewRecovery(sess),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any delegation from the environment, drives startup once and
// hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.idp.Restore(ctx, os.Getenv("LENS_DELEGATION"))
	a.rec.Refresh(ctx)
	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	id := a.idp.Current()
	return id != nil && !id.IsAnonymous()
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
