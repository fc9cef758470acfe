package domain

// Request is a single conversion request. It is built fresh for every edit
// and never stored.
type Request struct {
	Input string
	From  Radix
	To    Radix
}

// OutcomeKind tags which variant an Outcome holds.
type OutcomeKind int

const (
	// OutcomeEmpty means there is no input yet. It is not an error.
	OutcomeEmpty OutcomeKind = iota
	// OutcomeSameBase means source and target radix are equal and no
	// conversion is performed.
	OutcomeSameBase
	// OutcomeInvalid means the input is not a well-formed number in the
	// source radix.
	OutcomeInvalid
	// OutcomeSuccess means the input was converted; see Outcome.Result.
	OutcomeSuccess
)

// String returns the wire name of the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEmpty:
		return "EMPTY"
	case OutcomeSameBase:
		return "SAME_BASE"
	case OutcomeInvalid:
		return "INVALID"
	case OutcomeSuccess:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the result of a conversion. Result is only meaningful when Kind
// is OutcomeSuccess.
type Outcome struct {
	Kind   OutcomeKind
	Result string
}

// Empty returns the outcome for empty input.
func Empty() Outcome { return Outcome{Kind: OutcomeEmpty} }

// SameBase returns the outcome for equal source and target radices.
func SameBase() Outcome { return Outcome{Kind: OutcomeSameBase} }

// Invalid returns the outcome for malformed input.
func Invalid() Outcome { return Outcome{Kind: OutcomeInvalid} }

// Success returns a successful outcome carrying the formatted result.
func Success(result string) Outcome { return Outcome{Kind: OutcomeSuccess, Result: result} }

// OK reports whether the outcome holds a result.
func (o Outcome) OK() bool { return o.Kind == OutcomeSuccess }
