// Package api is the typed call surface over the backend actor. Each method
// wraps one backend operation; queries read through the identity-scoped
// cache and mutations invalidate the keys their result affects.
//
// Replies arrive as JSON-shaped maps. List replies carry their items under
// a plural key ("deals", "buyers"), nullable single-record replies carry
// the record under a singular key or omit it, and id-returning mutations
// reply with {"id": n}.
package api

import (
	"context"
	"strconv"
	"time"

	"github.com/wholesalelens/lenscli/internal/client/actor"
	"github.com/wholesalelens/lenscli/internal/client/cache"
	"github.com/wholesalelens/lenscli/internal/logging"
)

// Cache keys. Per-record entries use a "family/" prefix so a mutation can
// drop the whole family at once.
const (
	keyDeals     = "deals"
	keyBuyers    = "buyers"
	keyAnalytics = "analytics"
	keyCatalog   = "membershipCatalog"

	dealPrefix     = "deal/"
	buyerPrefix    = "buyer/"
	contractPrefix = "contracts/"
)

const defaultCallTimeout = 10 * time.Second

// Client issues backend calls on whatever connection the manager currently
// holds, so an identity switch transparently redirects subsequent calls.
type Client struct {
	actors *actor.Manager
	store  *cache.Store
	log    logging.Logger

	// CallTimeout bounds each individual backend call.
	CallTimeout time.Duration
}

func NewClient(actors *actor.Manager, store *cache.Store, log logging.Logger) *Client {
	return &Client{
		actors:      actors,
		store:       store,
		log:         log,
		CallTimeout: defaultCallTimeout,
	}
}

// call resolves the current actor and invokes method under the per-call
// timeout. The returned principal names the cache namespace the reply
// belongs to.
func (c *Client) call(ctx context.Context, method string, args map[string]any) (map[string]any, string, error) {
	a, err := c.actors.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	reply, err := c.invoke(ctx, a, method, args)
	return reply, a.Principal(), err
}

func (c *Client) invoke(ctx context.Context, a *actor.Actor, method string, args map[string]any) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.CallTimeout)
	defer cancel()
	return a.Invoke(ctx, method, args)
}

func dealKey(id int64) string      { return dealPrefix + strconv.FormatInt(id, 10) }
func buyerKey(id int64) string     { return buyerPrefix + strconv.FormatInt(id, 10) }
func contractsKey(id int64) string { return contractPrefix + strconv.FormatInt(id, 10) }

// anySlice converts a string slice for the struct codec, which only
// accepts []any.
func anySlice(ss []string) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

func items(reply map[string]any, key string) []map[string]any {
	raw, _ := reply[key].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func replyID(reply map[string]any) int64 {
	v, _ := reply["id"].(float64)
	return int64(v)
}

func optVal(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}
