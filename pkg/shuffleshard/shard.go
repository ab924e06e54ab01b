package shuffleshard

import (
	"math"
	"strconv"
	"strings"
)

// Shard is the ordered list of indices of hosts that are assigned to a
// single tenant. The order is significant, as hosts are selected from
// the shard by position.
type Shard []uint32

// String returns the indices of the hosts in the shard, separated by
// commas.
func (s Shard) String() string {
	var sb strings.Builder
	for i, host := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(host), 10))
	}
	return sb.String()
}

// ComputeShard deterministically selects up to shardSize distinct
// hosts out of a pool of totalHosts hosts for a given tenant.
//
// Every slot in the shard is seeded by hashing the tenant identifier
// together with the index of the slot. If the host obtained that way
// is already part of the shard, the hash is permuted until a host is
// found that isn't, or until totalHosts attempts have been made. In
// the latter case the slot is left out, meaning that the resulting
// shard may contain fewer than shardSize hosts.
//
// A pool without any hosts yields an empty shard.
func ComputeShard(tenantID string, totalHosts, shardSize uint32) Shard {
	if totalHosts == 0 {
		return Shard{}
	}
	shardSize = min(shardSize, totalHosts)

	modulus := uint64(totalHosts)
	shard := make(Shard, 0, shardSize)
	present := make(map[uint32]struct{}, shardSize)
	for slot := uint32(0); slot < shardSize; slot++ {
		hash := HashDJB2(tenantID + "_salt_" + strconv.FormatUint(uint64(slot), 10))
		candidate := uint32(hash % modulus)
		for attempts := uint32(0); attempts < totalHosts; attempts++ {
			if _, ok := present[candidate]; !ok {
				break
			}
			// The product is permitted to wrap around at 2^64
			// before the remainder is computed.
			hash = (hash*31 + uint64(attempts)) % math.MaxInt64
			candidate = uint32(hash % modulus)
		}
		if _, ok := present[candidate]; !ok {
			shard = append(shard, candidate)
			present[candidate] = struct{}{}
		}
	}
	return shard
}
