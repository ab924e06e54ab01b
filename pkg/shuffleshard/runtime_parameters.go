package shuffleshard

import (
	"github.com/buildbarn/bb-shuffle-shard/pkg/runtime"

	"google.golang.org/protobuf/types/known/structpb"
)

// RuntimeParameters can be used to construct a runtime layer that
// configures shuffle sharding. Entries in TenantShardSizes override
// DefaultShardSize for individual tenants.
type RuntimeParameters struct {
	TotalHosts       uint64
	DefaultShardSize uint64
	TenantShardSizes map[string]uint64
}

// ToStruct converts the parameters to a Protobuf Struct message, which
// is the format in which runtime layers are distributed through the
// Runtime Discovery Service.
func (p RuntimeParameters) ToStruct() *structpb.Struct {
	fields := make(map[string]*structpb.Value, 2+len(p.TenantShardSizes))
	fields[TotalHostsKey] = structpb.NewNumberValue(float64(p.TotalHosts))
	fields[DefaultShardSizeKey] = structpb.NewNumberValue(float64(p.DefaultShardSize))
	for tenantID, shardSize := range p.TenantShardSizes {
		fields[TenantShardSizeKey(tenantID)] = structpb.NewNumberValue(float64(shardSize))
	}
	return &structpb.Struct{Fields: fields}
}

// ToLayer converts the parameters to a runtime layer.
func (p RuntimeParameters) ToLayer() runtime.Layer {
	return runtime.NewStructLayer(p.ToStruct())
}
