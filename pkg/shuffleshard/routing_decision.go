package shuffleshard

import (
	"strconv"
)

// Names of the request headers that proxies attach to requests, so
// that backends and observability tooling can see how a request was
// routed.
const (
	ShardAssignmentHeader = "x-shard-assignment"
	ShardConfigHeader     = "x-shard-config"
	TargetHostHeader      = "x-target-host"
	TargetClusterHeader   = "x-target-cluster"
)

// RoutingDecision describes where a single request is routed.
type RoutingDecision struct {
	// Configuration that was in effect for the tenant, after the
	// shard size was capped to the total number of hosts.
	Configuration ShardConfiguration
	// Shard of hosts assigned to the tenant.
	Shard Shard
	// Host within the shard that should receive the request.
	SelectedHost uint32
	// Name of the cluster corresponding to the selected host.
	ClusterName string
}

// NewRoutingDecision creates a RoutingDecision for a host that was
// selected from a shard.
func NewRoutingDecision(configuration ShardConfiguration, shard Shard, selectedHost uint32) *RoutingDecision {
	return &RoutingDecision{
		Configuration: configuration,
		Shard:         shard,
		SelectedHost:  selectedHost,
		ClusterName:   ClusterNameForHost(selectedHost),
	}
}

// ClusterNameForHost returns the name of the cluster to which requests
// for a given host are sent.
func ClusterNameForHost(host uint32) string {
	return "backend_" + strconv.FormatUint(uint64(host), 10)
}

// Underfilled returns true if the shard contains fewer hosts than the
// configured shard size. This happens if no free host could be found
// for one or more slots of the shard.
func (d *RoutingDecision) Underfilled() bool {
	return uint64(len(d.Shard)) < uint64(d.Configuration.ShardSize)
}

// Attribute is a name/value pair describing a property of a
// RoutingDecision.
type Attribute struct {
	Name  string
	Value string
}

// Attributes returns the values of the headers that should be attached
// to a request that is routed according to this decision.
func (d *RoutingDecision) Attributes() []Attribute {
	return []Attribute{
		{Name: ShardAssignmentHeader, Value: d.Shard.String()},
		{Name: ShardConfigHeader, Value: d.Configuration.String()},
		{Name: TargetHostHeader, Value: strconv.FormatUint(uint64(d.SelectedHost), 10)},
		{Name: TargetClusterHeader, Value: d.ClusterName},
	}
}
