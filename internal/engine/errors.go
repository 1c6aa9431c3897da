package engine

import (
	"github.com/pkg/errors"

	"github.com/kalexmills/gratesheet/position"
)

// The three user-visible exception kinds a mutating operation can
// raise. Each is a sentinel so callers can distinguish them with
// errors.Is; every call site wraps one of these with errors.Wrapf to
// attach context.
var (
	ErrInvalidPosition    = errors.New("invalid position")
	ErrFormulaParse       = errors.New("formula parse error")
	ErrCircularDependency = errors.New("circular dependency")
)

func newInvalidPositionError(pos position.Position) error {
	return errors.Wrapf(ErrInvalidPosition, "position %v", pos)
}

func newFormulaParseError(text string, cause error) error {
	return errors.Wrapf(ErrFormulaParse, "parsing %q: %v", text, cause)
}

func newCircularDependencyError(pos position.Position) error {
	return errors.Wrapf(ErrCircularDependency, "setting %v would introduce a cycle", pos)
}
