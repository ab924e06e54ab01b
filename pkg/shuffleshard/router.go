package shuffleshard

import (
	"context"
)

// Router of requests. For every request, Router determines the shard
// of hosts belonging to the tenant and the host within that shard that
// should receive the request.
type Router interface {
	RouteRequest(ctx context.Context, tenantID, path string) (*RoutingDecision, error)
}
