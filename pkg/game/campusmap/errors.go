package campusmap

import "fmt"

// ErrorKind classifies map load failures. Each kind is itself an error so
// callers can test with errors.Is(err, campusmap.ErrUnknownLegend).
type ErrorKind int

// Load error kinds
const (
	ErrMalformed ErrorKind = iota + 1
	ErrDimensions
	ErrUnknownLegend
	ErrOutOfBounds
	ErrUnwalkable
	ErrNotFound
)

func (k ErrorKind) Error() string {
	switch k {
	case ErrMalformed:
		return "malformed map"
	case ErrDimensions:
		return "dimension mismatch"
	case ErrUnknownLegend:
		return "unknown legend entry"
	case ErrOutOfBounds:
		return "out of bounds"
	case ErrUnwalkable:
		return "unwalkable cell"
	case ErrNotFound:
		return "map not found"
	default:
		return "map error"
	}
}

// LoadError reports why a map could not be loaded. The map that was active
// before the load stays untouched.
type LoadError struct {
	MapID string
	Kind  ErrorKind
	Err   error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("map %q: %v", e.MapID, e.Kind)
	}
	return fmt.Sprintf("map %q: %v: %v", e.MapID, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func loadErr(id string, kind ErrorKind, format string, args ...any) *LoadError {
	return &LoadError{MapID: id, Kind: kind, Err: fmt.Errorf(format, args...)}
}
