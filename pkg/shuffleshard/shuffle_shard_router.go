package shuffleshard

import (
	"context"

	"github.com/buildbarn/bb-shuffle-shard/pkg/runtime"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type shuffleShardRouter struct {
	loader       runtime.Loader
	hostSelector HostSelector
}

// NewShuffleShardRouter creates a Router that assigns every tenant a
// shard computed by ComputeShard(). The parameters of the shard are
// obtained from the current runtime snapshot for every request, so
// that changes to the runtime configuration take effect immediately.
func NewShuffleShardRouter(loader runtime.Loader, hostSelector HostSelector) Router {
	return &shuffleShardRouter{
		loader:       loader,
		hostSelector: hostSelector,
	}
}

func (r *shuffleShardRouter) RouteRequest(ctx context.Context, tenantID, path string) (*RoutingDecision, error) {
	if tenantID == "" {
		return nil, status.Error(codes.InvalidArgument, "No tenant identifier provided")
	}

	configuration, err := ResolveShardConfiguration(tenantID, r.loader.Snapshot())
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to resolve shard configuration for tenant %#v", tenantID)
	}
	shard := ComputeShard(tenantID, configuration.TotalHosts, configuration.ShardSize)
	return NewRoutingDecision(configuration, shard, r.hostSelector.SelectHost(shard, path)), nil
}
