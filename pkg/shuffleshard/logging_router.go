package shuffleshard

import (
	"context"

	"github.com/chainguard-dev/clog"
)

type loggingRouter struct {
	base Router
}

// NewLoggingRouter creates a decorator for Router that logs every
// routing decision through the logger attached to the context.
// Decisions for which the shard contains fewer hosts than requested
// are logged as warnings, as are requests that are rejected.
func NewLoggingRouter(base Router) Router {
	return &loggingRouter{
		base: base,
	}
}

func (r *loggingRouter) RouteRequest(ctx context.Context, tenantID, path string) (*RoutingDecision, error) {
	logger := clog.FromContext(ctx).With("tenant", tenantID, "path", path)
	decision, err := r.base.RouteRequest(ctx, tenantID, path)
	if err != nil {
		logger.Warnf("Rejected request: %v", err)
		return nil, err
	}

	shard := decision.Shard.String()
	logger = logger.With(
		"shard", shard,
		"host", decision.SelectedHost,
		"underfilled", decision.Underfilled(),
	)
	if decision.Underfilled() {
		logger.Warnf(
			"Customer %s -> Config %s -> Shard [%s] -> Host %d: only %d of %d hosts could be assigned",
			tenantID, decision.Configuration, shard, decision.SelectedHost,
			len(decision.Shard), decision.Configuration.ShardSize,
		)
	} else {
		logger.Infof(
			"Customer %s -> Config %s -> Shard [%s] -> Host %d",
			tenantID, decision.Configuration, shard, decision.SelectedHost,
		)
	}
	return decision, nil
}
