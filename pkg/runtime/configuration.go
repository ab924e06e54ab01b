package runtime

import (
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/protobuf/types/known/structpb"
)

// NewLayerFromConfigurationFile creates a Layer based on the contents
// of a Jsonnet file. The file must evaluate to an object, whose fields
// are interpreted as runtime keys:
//
//	{
//	  'shuffle_sharding.total_hosts': 8,
//	  'shuffle_sharding.default_shard_size': 2,
//	  'shuffle_sharding.customer.acme.shard_size': 3,
//	}
func NewLayerFromConfigurationFile(path string) (Layer, error) {
	var layer structpb.Struct
	if err := util.UnmarshalConfigurationFromFile(path, &layer); err != nil {
		return nil, util.StatusWrapf(err, "Failed to read runtime layer from %s", path)
	}
	return NewStructLayer(&layer), nil
}
