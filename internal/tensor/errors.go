package tensor

import "fmt"

// DomainError reports a numeric request no generator can satisfy:
// an ascending range with start > stop, a non-positive sample count,
// a zero step, or a zero endpoint in a geometric progression.
// Validation happens before allocation, so a caller never observes a
// partially built tensor alongside a DomainError.
type DomainError struct {
	Op     string // Generator that rejected the request, e.g. "linspace".
	Reason string
}

// NewDomainError creates a DomainError for the given operation.
func NewDomainError(op, format string, args ...any) *DomainError {
	return &DomainError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// ShapeError reports an input tensor of the wrong rank where a
// generator required a 1-D vector.
type ShapeError struct {
	Op       string
	WantRank int
	GotRank  int
}

// NewShapeError creates a ShapeError for the given operation.
func NewShapeError(op string, wantRank, gotRank int) *ShapeError {
	return &ShapeError{Op: op, WantRank: wantRank, GotRank: gotRank}
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: expected rank %d input, got rank %d", e.Op, e.WantRank, e.GotRank)
}
