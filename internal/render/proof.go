package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/ndfmt/internal/ir"
)

// nd package markup.
const (
	EnvironmentOpen  = `\begin{nd}`
	EnvironmentClose = `\end{nd}`

	macroHypo  = `\hypo`
	macroHave  = `\have`
	boxOpen    = `\open`
	boxClose   = `\close`
	guardOpen  = "["
	guardSep   = ", "
	guardClose = "]"
)

// Proof lays out p as an nd environment. The result starts with
// \begin{nd} and a newline, has one newline-terminated line per proof line,
// and ends with \end{nd} without a trailing newline.
func Proof(p *ir.Proof, opts Options) (string, error) {
	var b strings.Builder
	if err := WriteProof(&b, p, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteProof writes the layout of p to w. See Proof.
func WriteProof(w io.Writer, p *ir.Proof, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(EnvironmentOpen)
	b.WriteByte('\n')

	unit := strings.Repeat(" ", opts.PadLength)
	padding := strings.Repeat(unit, opts.InitialPadding)
	for _, line := range p.Lines {
		switch l := line.(type) {
		case *ir.Open:
			b.WriteString(padding)
			writeOpen(&b, l)
			padding += unit
		case *ir.Close:
			padding = padding[:max(len(padding)-len(unit), 0)]
			b.WriteString(padding)
			b.WriteString(boxClose)
		case *ir.Hypo:
			b.WriteString(padding)
			writeNumbered(&b, macroHypo, l.Line, l.Expression)
		case *ir.Have:
			b.WriteString(padding)
			writeNumbered(&b, macroHave, l.Line, l.Expression)
		default:
			return fmt.Errorf("unknown proof line %T", line)
		}
		b.WriteByte('\n')
	}

	b.WriteString(EnvironmentClose)
	_, err := io.WriteString(w, b.String())
	return err
}

// writeNumbered writes `\have {3} { p \land q }`.
func writeNumbered(b *strings.Builder, macro string, line int, e ir.Expression) {
	b.WriteString(macro)
	b.WriteString(" {")
	b.WriteString(strconv.Itoa(line))
	b.WriteString("} { ")
	writeExpression(b, e)
	b.WriteString(" }")
}

func writeOpen(b *strings.Builder, l *ir.Open) {
	b.WriteString(boxOpen)
	if len(l.Guards) == 0 {
		return
	}
	b.WriteString(guardOpen)
	for i, g := range l.Guards {
		if i > 0 {
			b.WriteString(guardSep)
		}
		b.WriteString(Var(g))
	}
	b.WriteString(guardClose)
}
