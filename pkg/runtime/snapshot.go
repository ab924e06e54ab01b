package runtime

// Snapshot of runtime configuration at a single point in time.
// Snapshots are immutable, making it safe to call into them from many
// goroutines concurrently.
type Snapshot interface {
	// GetInteger returns the value of an integer runtime key, or
	// the provided default value if no layer sets the key.
	GetInteger(key string, defaultValue uint64) uint64
}

type layeredSnapshot struct {
	layers []Layer
}

// EmptySnapshot is a Snapshot that does not contain any keys. It can
// be used in case runtime configuration is unavailable, causing all
// lookups to yield their default values.
var EmptySnapshot Snapshot = layeredSnapshot{}

// NewLayeredSnapshot creates a Snapshot that is backed by a list of
// layers. Layers are consulted from last to first, meaning that keys
// set in later layers override the ones set in earlier layers.
func NewLayeredSnapshot(layers ...Layer) Snapshot {
	return layeredSnapshot{
		layers: append([]Layer(nil), layers...),
	}
}

func (s layeredSnapshot) GetInteger(key string, defaultValue uint64) uint64 {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if integer, ok := s.layers[i].LookupInteger(key); ok {
			return integer
		}
	}
	return defaultValue
}
