package shuffleshard

import (
	"math"
	"strconv"

	"github.com/buildbarn/bb-shuffle-shard/pkg/runtime"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// TotalHostsKey is the runtime key containing the number of
	// hosts in the pool.
	TotalHostsKey = "shuffle_sharding.total_hosts"
	// DefaultShardSizeKey is the runtime key containing the number
	// of hosts assigned to tenants that have no shard size of
	// their own.
	DefaultShardSizeKey = "shuffle_sharding.default_shard_size"

	// DefaultTotalHosts is used if TotalHostsKey is not set.
	DefaultTotalHosts = 8
	// DefaultShardSize is used if DefaultShardSizeKey is not set.
	DefaultShardSize = 2
)

// TenantShardSizeKey returns the runtime key containing the shard size
// of an individual tenant.
func TenantShardSizeKey(tenantID string) string {
	return tenantShardSizeKeyPrefix + tenantID + tenantShardSizeKeySuffix
}

// ShardConfiguration contains the parameters that are used to compute
// the shard of a tenant.
type ShardConfiguration struct {
	TotalHosts uint32
	ShardSize  uint32
}

// String returns the configuration in the form "<size>/<total>".
func (c ShardConfiguration) String() string {
	return strconv.FormatUint(uint64(c.ShardSize), 10) + "/" + strconv.FormatUint(uint64(c.TotalHosts), 10)
}

// ResolveShardConfiguration obtains the shard configuration of a
// tenant from a runtime snapshot. The shard size of the tenant is
// used if set to a non-zero value. Otherwise the default shard size
// is used. Shard sizes are capped to the total number of hosts.
func ResolveShardConfiguration(tenantID string, snapshot runtime.Snapshot) (ShardConfiguration, error) {
	totalHosts := snapshot.GetInteger(TotalHostsKey, DefaultTotalHosts)
	if totalHosts == 0 {
		return ShardConfiguration{}, status.Errorf(codes.FailedPrecondition, "Runtime key %s resolves to zero hosts", TotalHostsKey)
	}
	if totalHosts > math.MaxUint32 {
		return ShardConfiguration{}, status.Errorf(codes.FailedPrecondition, "Runtime key %s resolves to %d hosts, which exceeds the maximum of %d", TotalHostsKey, totalHosts, uint32(math.MaxUint32))
	}

	shardSize := snapshot.GetInteger(TenantShardSizeKey(tenantID), 0)
	if shardSize == 0 {
		shardSize = snapshot.GetInteger(DefaultShardSizeKey, DefaultShardSize)
	}
	return ShardConfiguration{
		TotalHosts: uint32(totalHosts),
		ShardSize:  uint32(min(shardSize, totalHosts)),
	}, nil
}
