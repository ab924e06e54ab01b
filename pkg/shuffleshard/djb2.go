package shuffleshard

// HashDJB2 computes the DJB2 hash of a string. The hash is computed
// over the bytes of the string, using arithmetic that wraps around at
// 2^64. The hash of the empty string is 5381.
//
// This hash is not suitable for cryptographic purposes. It is used
// because it is cheap to compute and yields the same results as
// existing deployments of the shuffle sharding filter.
func HashDJB2(s string) uint64 {
	hash := uint64(5381)
	for i := 0; i < len(s); i++ {
		hash = hash*33 + uint64(s[i])
	}
	return hash
}
