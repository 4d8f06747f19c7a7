package actor

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/wholesalelens/lenscli/internal/common"
)

func withDelegation(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.DelegationHeaderName)
	md.Set(common.DelegationHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// delegationInterceptor attaches the delegation token to every outbound
// call. Anonymous connections send no token. Delegations are not refreshable
// client-side: an Unauthenticated reply is surfaced as-is and recovery is a
// full sign-out.
func delegationInterceptor(token string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if token != "" {
			ctx = withDelegation(ctx, token)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
