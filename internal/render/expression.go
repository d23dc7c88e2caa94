package render

import (
	"strings"
	"unicode/utf8"

	"github.com/roach88/ndfmt/internal/ir"
)

// Formula tokens.
const (
	symTrue      = "T"
	symFalse     = "F"
	symNot       = `\lnot`
	symForall    = `\forall`
	symExists    = `\exists`
	symBinder    = "."
	leftGroup    = "("
	rightGroup   = ")"
	mathitPrefix = `\mathit{`
	mathitSuffix = "}"
)

// binaryOp describes how a binary connective is written.
type binaryOp struct {
	symbol string
	// flatten writes And/Or operands without their own parentheses.
	flatten bool
}

var binaryOps = map[ir.Kind]binaryOp{
	ir.KindAnd:     {symbol: `\land`},
	ir.KindOr:      {symbol: `\lor`},
	ir.KindImplies: {symbol: `\rightarrow`, flatten: true},
	ir.KindIff:     {symbol: `\leftrightarrow`, flatten: true},
}

// Expression renders e in Fitch notation. The output is deterministic.
func Expression(e ir.Expression) string {
	var b strings.Builder
	writeExpression(&b, e)
	return b.String()
}

// Var renders a variable name. Single-character names (counted in runes)
// are written as is;
// longer ones are set upright-italic with \mathit so LaTeX does not read
// them as a product of variables.
func Var(v ir.Var) string {
	if utf8.RuneCountInString(v.Name) <= 1 {
		return v.Name
	}
	return mathitPrefix + v.Name + mathitSuffix
}

func writeExpression(b *strings.Builder, e ir.Expression) {
	switch x := e.(type) {
	case ir.Var:
		b.WriteString(Var(x))
	case ir.Func:
		b.WriteString(Var(x.Name))
		if x.Body != nil {
			b.WriteString(leftGroup)
			writeExpression(b, x.Body)
			b.WriteString(rightGroup)
		}
	case ir.True:
		b.WriteString(symTrue)
	case ir.False:
		b.WriteString(symFalse)
	case ir.Not:
		b.WriteString(symNot)
		b.WriteByte(' ')
		writeOperand(b, x.Body, false)
	case ir.And, ir.Or, ir.Implies, ir.Iff:
		op := binaryOps[e.Kind()]
		left, right, _ := ir.Operands(e)
		writeOperand(b, left, op.flatten)
		b.WriteByte(' ')
		b.WriteString(op.symbol)
		b.WriteByte(' ')
		writeOperand(b, right, op.flatten)
	case ir.Forall:
		writeQuantifier(b, symForall, x.Variable, x.Body)
	case ir.Exists:
		writeQuantifier(b, symExists, x.Variable, x.Body)
	}
}

func writeQuantifier(b *strings.Builder, symbol string, v ir.Var, body ir.Expression) {
	b.WriteString(symbol)
	b.WriteByte(' ')
	b.WriteString(Var(v))
	b.WriteByte(' ')
	b.WriteString(symBinder)
	b.WriteByte(' ')
	writeExpression(b, body)
}

// writeOperand writes e as the operand of a connective, parenthesized unless
// atomic. With flatten set, conjunctions and disjunctions are also written
// bare.
func writeOperand(b *strings.Builder, e ir.Expression, flatten bool) {
	if IsAtomic(e) || flatten && isJunction(e) {
		writeExpression(b, e)
		return
	}
	b.WriteString(leftGroup)
	writeExpression(b, e)
	b.WriteString(rightGroup)
}

// IsAtomic reports whether e never needs parentheses as an operand.
func IsAtomic(e ir.Expression) bool {
	switch e.Kind() {
	case ir.KindVar, ir.KindFunc, ir.KindTrue, ir.KindFalse, ir.KindNot:
		return true
	}
	return false
}

func isJunction(e ir.Expression) bool {
	k := e.Kind()
	return k == ir.KindAnd || k == ir.KindOr
}
