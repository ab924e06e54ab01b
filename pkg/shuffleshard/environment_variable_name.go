package shuffleshard

import (
	"encoding/hex"
	"strings"
)

const (
	tenantShardSizeKeyPrefix = "shuffle_sharding.customer."
	tenantShardSizeKeySuffix = ".shard_size"

	tenantShardSizeVariablePrefix = "SHUFFLE_SHARDING_CUSTOMER_"
	tenantShardSizeVariableSuffix = "_SHARD_SIZE"
)

// EnvironmentVariableName translates the runtime keys used by the
// shuffle shard router to names of environment variables. It can be
// provided to runtime.NewEnvironmentLayer().
//
// TotalHostsKey and DefaultShardSizeKey are converted to upper case
// with periods replaced by underscores, yielding
// SHUFFLE_SHARDING_TOTAL_HOSTS and SHUFFLE_SHARDING_DEFAULT_SHARD_SIZE.
// Tenant identifiers are case sensitive and may contain arbitrary
// bytes, so the shard size key of a tenant embeds the tenant
// identifier in upper case hexadecimal. The shard size of tenant
// "acme" is thus read from SHUFFLE_SHARDING_CUSTOMER_61636D65_SHARD_SIZE.
// All other keys cannot be set through the environment.
func EnvironmentVariableName(key string) (string, bool) {
	switch key {
	case TotalHostsKey:
		return "SHUFFLE_SHARDING_TOTAL_HOSTS", true
	case DefaultShardSizeKey:
		return "SHUFFLE_SHARDING_DEFAULT_SHARD_SIZE", true
	}
	// The prefix and suffix may not overlap, as in
	// "shuffle_sharding.customer.shard_size".
	if len(key) < len(tenantShardSizeKeyPrefix)+len(tenantShardSizeKeySuffix) ||
		!strings.HasPrefix(key, tenantShardSizeKeyPrefix) ||
		!strings.HasSuffix(key, tenantShardSizeKeySuffix) {
		return "", false
	}
	tenantID := key[len(tenantShardSizeKeyPrefix) : len(key)-len(tenantShardSizeKeySuffix)]
	return TenantShardSizeEnvironmentVariableName(tenantID), true
}

// TenantShardSizeEnvironmentVariableName returns the name of the
// environment variable that overrides the shard size of a tenant.
func TenantShardSizeEnvironmentVariableName(tenantID string) string {
	return tenantShardSizeVariablePrefix + strings.ToUpper(hex.EncodeToString([]byte(tenantID))) + tenantShardSizeVariableSuffix
}
