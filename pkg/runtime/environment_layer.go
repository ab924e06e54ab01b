package runtime

import (
	"github.com/sethvargo/go-envconfig"
)

// EnvironmentVariableNamer translates a runtime key to the name of the
// environment variable that holds its value. Keys for which false is
// returned cannot be set through the environment.
//
// Implementations must map distinct keys to distinct names. Otherwise
// a value meant for one key also becomes visible under another.
type EnvironmentVariableNamer func(key string) (string, bool)

type environmentLayer struct {
	lookuper envconfig.Lookuper
	namer    EnvironmentVariableNamer
}

// NewEnvironmentLayer creates a Layer whose keys are obtained from
// environment variables. Lookups are performed on every call, so that
// the values can be obtained from sources that change over time.
//
// Use envconfig.PrefixLookuper() to place all variables in a
// namespace, and envconfig.MapLookuper() to inject values in tests.
func NewEnvironmentLayer(lookuper envconfig.Lookuper, namer EnvironmentVariableNamer) Layer {
	return &environmentLayer{
		lookuper: lookuper,
		namer:    namer,
	}
}

func (l *environmentLayer) LookupInteger(key string) (uint64, bool) {
	name, ok := l.namer(key)
	if !ok {
		return 0, false
	}
	value, ok := l.lookuper.Lookup(name)
	if !ok {
		return 0, false
	}
	return parseIntegerString(value)
}
