// SPDX-License-Identifier: MIT

package solve

import "fmt"

// Status is the classified result of one engine call.
type Status int

const (
	// Solved means factors and solution are valid.
	Solved Status = iota
	// Singular means U has an exact zero pivot.
	Singular
	// OutOfMemory means the engine exhausted its workspace.
	OutOfMemory
	// Unknown covers negative status codes.
	Unknown
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Solved:
		return "Solved"
	case Singular:
		return "Singular"
	case OutOfMemory:
		return "OutOfMemory"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome carries the status and its payload.
//   - SingularColumn is set for Singular.
//   - BytesAllocated is set for OutOfMemory.
type Outcome struct {
	Status         Status
	Info           int
	SingularColumn int
	BytesAllocated int
}

// Classify maps the engine's info code for an A with numColsA columns:
//
//	info < 0              Unknown
//	info == 0             Solved
//	0 < info <= numColsA  Singular, column info-1
//	info > numColsA       OutOfMemory, info-numColsA bytes
//
// Every integer falls in exactly one branch.
func Classify(info, numColsA int) Outcome {
	out := Outcome{Info: info}
	switch {
	case info < 0:
		out.Status = Unknown
	case info == 0:
		out.Status = Solved
	case info <= numColsA:
		out.Status = Singular
		out.SingularColumn = info - 1
	default:
		out.Status = OutOfMemory
		out.BytesAllocated = info - numColsA
	}

	return out
}

// Err returns nil for Solved and a matchable error otherwise.
func (o Outcome) Err() error {
	switch o.Status {
	case Solved:
		return nil
	case Singular:
		return fmt.Errorf("solve: column %d: %w", o.SingularColumn, ErrSingular)
	case OutOfMemory:
		return &OutOfMemoryError{BytesAllocated: o.BytesAllocated}
	default:
		return fmt.Errorf("solve: info %d: %w", o.Info, ErrUnknown)
	}
}
