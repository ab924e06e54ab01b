package shuffleshard

// HostSelector picks a single host out of the shard of a tenant.
type HostSelector interface {
	SelectHost(shard Shard, path string) uint32
}

type pathHashingHostSelector struct{}

// PathHashingHostSelector is a HostSelector that picks a host by
// hashing the path of the request. Requests for the same path thus
// consistently end up at the same host, as long as the shard remains
// unchanged.
//
// Host zero is returned if the shard is empty.
var PathHashingHostSelector HostSelector = pathHashingHostSelector{}

func (pathHashingHostSelector) SelectHost(shard Shard, path string) uint32 {
	if len(shard) == 0 {
		return 0
	}
	return shard[HashDJB2(path)%uint64(len(shard))]
}
