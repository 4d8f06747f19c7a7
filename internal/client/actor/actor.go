// Package actor manages the client's connection to the Wholesale Lens
// backend. An actor is a live handle bound to exactly one identity; calls go
// through a dynamic structpb codec so failures classify structurally by gRPC
// status code instead of by matching error-message text.
package actor

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// servicePrefix is the fully qualified gRPC service the gateway exposes.
const servicePrefix = "/wholesalelens.Backend/"

// Conn is the subset of grpc.ClientConn the actor needs. Alternative
// transports (and test fakes) implement it.
type Conn interface {
	Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error
	Close() error
}

// Actor is a usable backend handle. Instances are produced by Manager;
// existence alone does not imply readiness, since the Manager only publishes an
// actor after its ping round-trips.
type Actor struct {
	conn      Conn
	principal string
}

// Principal returns the identity the actor is bound to.
func (a *Actor) Principal() string {
	return a.principal
}

// Invoke calls a backend method with JSON-shaped args and returns the
// JSON-shaped reply. Errors come back mapped to the common sentinels.
func (a *Actor) Invoke(ctx context.Context, method string, args map[string]any) (map[string]any, error) {
	if args == nil {
		args = map[string]any{}
	}
	req, err := structpb.NewStruct(args)
	if err != nil {
		return nil, err
	}

	reply := &structpb.Struct{}
	if err := a.conn.Invoke(ctx, servicePrefix+method, req, reply); err != nil {
		return nil, mapError(err)
	}
	return reply.AsMap(), nil
}

func (a *Actor) close() error {
	return a.conn.Close()
}
