package ir

// Snapshot is the {line, depth} counter captured when a proof line is
// created. It is copied by value, so later changes to the running counter
// never reach lines that were already emitted.
type Snapshot struct {
	Line  int `json:"line"`
	Depth int `json:"depth"`
}

// ProofLine is a sealed interface over the lines of a Fitch proof:
// *Have, *Hypo, *Open and *Close.
type ProofLine interface {
	State() Snapshot
	proofLine() // Sealed
}

// Have is a derived line. It consumes Line.
type Have struct {
	Snapshot
	Expression Expression
}

// Hypo is an assumption, normally at the top of a box. It consumes Line.
type Hypo struct {
	Snapshot
	Expression Expression
}

// Open starts a box. Guards are the variables the box introduces; they are
// only appended while the proof is being compiled.
type Open struct {
	Snapshot
	Guards []Var
}

// Close ends the innermost open box. Its snapshot has the depth of the
// matching Open.
type Close struct {
	Snapshot
}

func (l *Have) State() Snapshot  { return l.Snapshot }
func (l *Hypo) State() Snapshot  { return l.Snapshot }
func (l *Open) State() Snapshot  { return l.Snapshot }
func (l *Close) State() Snapshot { return l.Snapshot }

func (*Have) proofLine()  {}
func (*Hypo) proofLine()  {}
func (*Open) proofLine()  {}
func (*Close) proofLine() {}

// Proof is the ordered line list of one compiled proof.
type Proof struct {
	Lines []ProofLine
}

// LineCount returns the number of numbered (Have and Hypo) lines.
func (p *Proof) LineCount() int {
	n := 0
	for _, l := range p.Lines {
		switch l.(type) {
		case *Have, *Hypo:
			n++
		}
	}
	return n
}

// MaxDepth returns the deepest box nesting reached by the proof.
func (p *Proof) MaxDepth() int {
	depth := 0
	for _, l := range p.Lines {
		if d := l.State().Depth; d > depth {
			depth = d
		}
	}
	return depth
}
