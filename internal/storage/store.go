package storage

// Store is the narrow key/value surface the quiz engine persists through.
// Implementations must treat a missing key as (nil, false, nil), not an
// error; the engine maps absence to a fresh session.
type Store interface {
	Save(key string, value []byte) error
	Load(key string) ([]byte, bool, error)
	Remove(key string) error
}

// Keys used by the quiz engine.
const (
	StateKey   = "quiz_state"
	ResultsKey = "quiz_results"
)
