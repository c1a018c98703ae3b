package onionskin

import (
	"errors"
	"fmt"
)

var (
	ErrNilSurface       = errors.New("nil surface")
	ErrNilDocument      = errors.New("nil document")
	ErrUnknownLayerType = errors.New("unknown layer type")
	ErrNarrowing        = errors.New("layer does not implement its type")
)

// Fault is a broken renderer invariant. Strict renderers panic with a *Fault;
// others log it and abandon the step that raised it.
type Fault struct {
	Op  string
	Err error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("onionskin: %s: %v", f.Op, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
