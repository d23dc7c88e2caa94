package ir

// Kind identifies the case of an Expression.
type Kind int

const (
	KindVar Kind = iota
	KindFunc
	KindTrue
	KindFalse
	KindNot
	KindAnd
	KindOr
	KindImplies
	KindIff
	KindForall
	KindExists
)

var kindNames = [...]string{
	KindVar:     "var",
	KindFunc:    "func",
	KindTrue:    "true",
	KindFalse:   "false",
	KindNot:     "not",
	KindAnd:     "and",
	KindOr:      "or",
	KindImplies: "implies",
	KindIff:     "iff",
	KindForall:  "forall",
	KindExists:  "exists",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}
