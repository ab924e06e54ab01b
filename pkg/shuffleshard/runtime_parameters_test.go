package shuffleshard_test

import (
	"testing"

	"github.com/buildbarn/bb-shuffle-shard/pkg/shuffleshard"
	"github.com/buildbarn/bb-storage/pkg/testutil"

	"google.golang.org/protobuf/types/known/structpb"
)

func TestRuntimeParametersToStruct(t *testing.T) {
	testutil.RequireEqualProto(t, &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"shuffle_sharding.total_hosts":                    structpb.NewNumberValue(12),
			"shuffle_sharding.default_shard_size":             structpb.NewNumberValue(2),
			"shuffle_sharding.customer.customer-A.shard_size": structpb.NewNumberValue(3),
			"shuffle_sharding.customer.customer-B.shard_size": structpb.NewNumberValue(4),
		},
	}, shuffleshard.RuntimeParameters{
		TotalHosts:       12,
		DefaultShardSize: 2,
		TenantShardSizes: map[string]uint64{
			"customer-A": 3,
			"customer-B": 4,
		},
	}.ToStruct())
}
