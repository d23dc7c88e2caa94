package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasError(t *testing.T) {
	clean := New(TypeExpression, New(TypeNot, Leaf(TypeVariable, "p")))
	assert.False(t, clean.HasError())

	withError := New(TypeExpression, New(TypeAnd, Leaf(TypeVariable, "p"), New(TypeError)))
	assert.True(t, withError.HasError())

	missing := New(TypeExpression, &Node{Type: TypeVariable, Missing: true})
	assert.True(t, missing.HasError())

	var nilNode *Node
	assert.False(t, nilNode.HasError())
}

func TestPos(t *testing.T) {
	n := &Node{Type: TypeProof, Row: 3, Column: 5}
	assert.True(t, n.Pos().IsValid())
	assert.Equal(t, "3:5", n.Pos().String())

	assert.False(t, New(TypeProof).Pos().IsValid())
	assert.Equal(t, "-", New(TypeProof).Pos().String())
}

func TestString(t *testing.T) {
	n := New(TypeExpression, New(TypeAnd, Leaf(TypeVariable, "p"), &Node{Type: TypeVariable, Missing: true}))
	assert.Equal(t, `(expression (and (variable "p") (MISSING variable)))`, n.String())
}

func TestFirstError(t *testing.T) {
	bad := &Node{Type: TypeError, Row: 2, Column: 7}
	n := New(TypeProof, New(TypeBlock, New(TypeExpression, Leaf(TypeVariable, "p")), New(TypeExpression, bad)))
	assert.Same(t, bad, n.FirstError())
	assert.Nil(t, New(TypeProof).FirstError())
}
