package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/buildbarn/bb-shuffle-shard/pkg/runtime"
	"github.com/buildbarn/bb-shuffle-shard/pkg/shuffleshard"
	"github.com/buildbarn/bb-storage/pkg/program"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/sethvargo/go-envconfig"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Prefix of environment variables that override keys in the runtime
// layer, e.g. SHUFFLE_SHARD_ROUTE_SHUFFLE_SHARDING_TOTAL_HOSTS. See
// shuffleshard.EnvironmentVariableName() for the naming of per-tenant
// variables.
const environmentPrefix = "SHUFFLE_SHARD_ROUTE_"

func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if len(os.Args) < 3 {
			return status.Error(codes.InvalidArgument, "Usage: shuffle_shard_route runtime.jsonnet tenant_id [path ...]")
		}
		fileLayer, err := runtime.NewLayerFromConfigurationFile(os.Args[1])
		if err != nil {
			return err
		}
		loader := runtime.NewStaticLoader(
			runtime.NewLayeredSnapshot(
				fileLayer,
				runtime.NewEnvironmentLayer(
					envconfig.PrefixLookuper(environmentPrefix, envconfig.OsLookuper()),
					shuffleshard.EnvironmentVariableName),
			),
		)
		router := shuffleshard.NewLoggingRouter(
			shuffleshard.NewShuffleShardRouter(loader, shuffleshard.PathHashingHostSelector),
		)

		tenantID := os.Args[2]
		paths := os.Args[3:]
		if len(paths) == 0 {
			paths = []string{"/"}
		}
		for _, path := range paths {
			decision, err := router.RouteRequest(ctx, tenantID, path)
			if err != nil {
				return util.StatusWrapf(err, "Failed to route request for path %#v", path)
			}
			log.Printf("Routed %#v for tenant %#v", path, tenantID)
			for _, attribute := range decision.Attributes() {
				fmt.Printf("%s: %s\n", attribute.Name, attribute.Value)
			}
		}
		return nil
	})
}
