package runtime

import (
	"math"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

// Layer of runtime configuration. A layer only contains the keys that
// were explicitly set in it. Keys that are absent are resolved by
// layers below it, or by the default value provided by the caller of
// Snapshot.GetInteger().
type Layer interface {
	LookupInteger(key string) (uint64, bool)
}

type structLayer struct {
	integers map[string]uint64
}

// NewStructLayer creates a Layer that is backed by the fields of a
// Protobuf Struct message. This is the message type in which runtime
// layers are distributed through the Runtime Discovery Service.
//
// The contents of the message are copied, meaning that the message may
// be modified afterwards without affecting the layer. Fields that do
// not hold an unsigned integer are discarded.
func NewStructLayer(layer *structpb.Struct) Layer {
	fields := layer.GetFields()
	integers := make(map[string]uint64, len(fields))
	for key, value := range fields {
		if integer, ok := parseInteger(value); ok {
			integers[key] = integer
		}
	}
	return &structLayer{
		integers: integers,
	}
}

func (l *structLayer) LookupInteger(key string) (uint64, bool) {
	integer, ok := l.integers[key]
	return integer, ok
}

// parseInteger converts a Protobuf Value to an unsigned integer. JSON
// has no integer type, so numbers are accepted as long as they are
// non-negative and have no fractional part. Strings are accepted if
// they contain a decimal number without leading or trailing
// whitespace.
func parseInteger(value *structpb.Value) (uint64, bool) {
	switch kind := value.GetKind().(type) {
	case *structpb.Value_NumberValue:
		f := kind.NumberValue
		if f < 0 || f >= 1<<64 || f != math.Trunc(f) {
			return 0, false
		}
		return uint64(f), true
	case *structpb.Value_StringValue:
		return parseIntegerString(kind.StringValue)
	default:
		return 0, false
	}
}

func parseIntegerString(value string) (uint64, bool) {
	integer, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return integer, true
}
