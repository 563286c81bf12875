package catalog

import "context"

// LoadState describes what a backend found when loading.
type LoadState int

const (
	// StateLoaded means a well-formed collection was read.
	StateLoaded LoadState = iota
	// StateAbsent means the backing store does not exist yet.
	StateAbsent
	// StateCorrupt means the backing store exists but could not be decoded.
	StateCorrupt
)

func (s LoadState) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateAbsent:
		return "absent"
	case StateCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Snapshot is the result of loading a backing store. Books is empty unless
// State is StateLoaded. Cause explains a StateCorrupt result.
type Snapshot struct {
	Books []Book
	State LoadState
	Cause error
}

// Storage persists the whole collection at once.
type Storage interface {
	// Load reads the full collection. Absent and corrupt stores are reported
	// through Snapshot.State with a nil error; the error is reserved for
	// failures such as permission problems.
	Load(ctx context.Context) (Snapshot, error)
	// Save overwrites the backing store with books.
	Save(ctx context.Context, books []Book) error
}
