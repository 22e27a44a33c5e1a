package writer

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument reports a nil writer, element, member or sink.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidModeTransition reports entering a comment scope while
	// another comment scope is active.
	ErrInvalidModeTransition = errors.New("invalid mode transition")

	// ErrUnmappedValue reports a value outside a closed set of choices,
	// such as an unknown visibility.
	ErrUnmappedValue = errors.New("unmapped enumerated value")
)

// Unmapped returns an ErrUnmappedValue describing the offending value.
func Unmapped(kind string, value any) error {
	return errors.Wrapf(ErrUnmappedValue, "%s %v", kind, value)
}
