package ir

// Expression is a sealed interface over the logical formula cases.
// Only the types in this file implement it.
//
// Expressions are immutable once built; the compiler constructs them bottom-up
// and nothing mutates them afterwards.
type Expression interface {
	Kind() Kind
	expression() // Sealed
}

// Var is a propositional or individual variable. Name is never empty.
type Var struct {
	Name string
}

// Func is a predicate or function application. Body is nil when the name
// is used without an argument.
type Func struct {
	Name Var
	Body Expression
}

// True is the constant T.
type True struct{}

// False is the constant F.
type False struct{}

// Not is negation.
type Not struct {
	Body Expression
}

// And is conjunction. Operand order is preserved as written.
type And struct {
	Left, Right Expression
}

// Or is disjunction.
type Or struct {
	Left, Right Expression
}

// Implies is implication; Left is the antecedent.
type Implies struct {
	Left, Right Expression
}

// Iff is the biconditional.
type Iff struct {
	Left, Right Expression
}

// Forall is universal quantification over Variable.
type Forall struct {
	Variable Var
	Body     Expression
}

// Exists is existential quantification over Variable.
type Exists struct {
	Variable Var
	Body     Expression
}

func (Var) Kind() Kind     { return KindVar }
func (Func) Kind() Kind    { return KindFunc }
func (True) Kind() Kind    { return KindTrue }
func (False) Kind() Kind   { return KindFalse }
func (Not) Kind() Kind     { return KindNot }
func (And) Kind() Kind     { return KindAnd }
func (Or) Kind() Kind      { return KindOr }
func (Implies) Kind() Kind { return KindImplies }
func (Iff) Kind() Kind     { return KindIff }
func (Forall) Kind() Kind  { return KindForall }
func (Exists) Kind() Kind  { return KindExists }

func (Var) expression()     {}
func (Func) expression()    {}
func (True) expression()    {}
func (False) expression()   {}
func (Not) expression()     {}
func (And) expression()     {}
func (Or) expression()      {}
func (Implies) expression() {}
func (Iff) expression()     {}
func (Forall) expression()  {}
func (Exists) expression()  {}

// Operands returns the left and right operands of a binary connective.
// ok is false for every other case.
func Operands(e Expression) (left, right Expression, ok bool) {
	switch x := e.(type) {
	case And:
		return x.Left, x.Right, true
	case Or:
		return x.Left, x.Right, true
	case Implies:
		return x.Left, x.Right, true
	case Iff:
		return x.Left, x.Right, true
	}
	return nil, nil, false
}
