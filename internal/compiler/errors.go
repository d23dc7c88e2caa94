package compiler

import (
	"errors"
	"fmt"

	"github.com/roach88/ndfmt/internal/syntax"
)

// StructuralError reports a syntax tree that cannot be lowered: wrong root
// tag, an embedded parse error, a required child that is absent, or a guard
// that does not follow a box opening.
//
// It is returned unchanged to the caller; no partial output accompanies it.
type StructuralError struct {
	Node    string     // tag of the node being compiled
	Field   string     // the part that was expected (optional)
	Message string     // human-readable description
	Pos     syntax.Pos // position of the offending node, if known
}

func (e *StructuralError) Error() string {
	where := e.Node
	if e.Field != "" {
		where += "." + e.Field
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, where, e.Message)
	}
	return fmt.Sprintf("%s: %s", where, e.Message)
}

// IsStructuralError reports whether err is, or wraps, a StructuralError.
func IsStructuralError(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

func structuralError(n *syntax.Node, field, format string, args ...any) *StructuralError {
	return &StructuralError{
		Node:    nodeType(n),
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Pos:     n.Pos(),
	}
}

// parseError reports the first ERROR or missing node below n.
func parseError(n *syntax.Node) *StructuralError {
	bad := n.FirstError()
	msg := "parse error"
	if bad.Missing {
		msg = fmt.Sprintf("parser inserted missing %s", bad.Type)
	}
	return &StructuralError{
		Node:    nodeType(n),
		Message: msg,
		Pos:     bad.Pos(),
	}
}

func nodeType(n *syntax.Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Type
}

// requireChild finds the next significant child of n at or after index i.
// field names what the child is for in the error message.
func requireChild(n *syntax.Node, i int, field string) (syntax.Child, error) {
	c, ok := syntax.NextChild(n, i)
	if !ok {
		return syntax.Child{}, structuralError(n, field, "could not find expected %s", field)
	}
	return c, nil
}
