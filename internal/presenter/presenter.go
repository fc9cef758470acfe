// Package presenter owns the user-facing state of a conversion session (input
// text, source and target radix) and turns it into a renderable View. Every
// front end keeps its state here and calls the converter through it on every
// change; the converter itself never holds state.
package presenter

import (
	"slices"
	"unicode"

	"baseconv/internal/config"
	"baseconv/internal/converter"
	"baseconv/pkg/domain"
)

// Messages shown for the non-success outcomes.
const (
	MessageSameBase = "Select different bases for conversion"
	MessageInvalid  = "Invalid number for the selected base"
)

// Options configure new sessions.
type Options struct {
	// DefaultFrom is the source radix of a fresh session.
	DefaultFrom domain.Radix
	// DefaultTo is the target radix of a fresh session.
	DefaultTo domain.Radix
	// MaxInputLength bounds the input length in bytes. Longer input is
	// reported as invalid without being parsed. Zero disables the limit.
	MaxInputLength int
}

// NewOptions builds Options from the application config. Unknown radix names
// fall back to decimal and hexadecimal, the defaults of the converter page.
func NewOptions(cfg *config.Config) Options {
	from, err := domain.ParseRadix(cfg.Converter.DefaultFrom)
	if err != nil {
		from = domain.Decimal
	}
	to, err := domain.ParseRadix(cfg.Converter.DefaultTo)
	if err != nil {
		to = domain.Hexadecimal
	}

	return Options{
		DefaultFrom:    from,
		DefaultTo:      to,
		MaxInputLength: cfg.Converter.MaxInputLength,
	}
}

// State is the complete UI state of one session.
type State struct {
	Input string
	From  domain.Radix
	To    domain.Radix
}

// View is everything a renderer needs to draw the current state.
type View struct {
	State   State
	Outcome domain.Outcome
	// Message is the guard or error text, empty for Empty and Success.
	Message string
	// Label captions the result, e.g. "Result (Hex)". Empty unless Success.
	Label string
	// Result is the converted value. Empty unless Success.
	Result string
	// Placeholder is the hint shown in an empty input field.
	Placeholder string
	// Keypad lists the digit keys valid for the source radix.
	Keypad []rune
}

// Session is a single user's conversion session. It is not safe for
// concurrent use; each front end event loop or request owns its Session.
type Session struct {
	conv  converter.Converter
	opts  Options
	state State
}

// New starts a session with empty input and the default radices.
func New(conv converter.Converter, opts Options) *Session {
	return Restore(conv, opts, State{From: opts.DefaultFrom, To: opts.DefaultTo})
}

// Restore resumes a session from previously rendered state, e.g. the fields
// of a submitted form. Unsupported radices are replaced by the defaults.
func Restore(conv converter.Converter, opts Options, state State) *Session {
	if !state.From.Valid() {
		state.From = opts.DefaultFrom
	}
	if !state.To.Valid() {
		state.To = opts.DefaultTo
	}

	return &Session{conv: conv, opts: opts, state: state}
}

// State returns a copy of the current state.
func (s *Session) State() State { return s.state }

// Keypad returns the digit keys of the current source radix.
func (s *Session) Keypad() []rune {
	return s.conv.ValidDigits(s.state.From)
}

// Press appends a key to the input. Only digits of the source radix are
// accepted, plus '-' as the very first character. Letters are stored
// upper-case. It reports whether the key was accepted.
func (s *Session) Press(key rune) bool {
	if key == '-' {
		if s.state.Input != "" {
			return false
		}
		s.state.Input = "-"

		return true
	}

	key = unicode.ToUpper(key)
	if !slices.Contains(s.Keypad(), key) {
		return false
	}
	s.state.Input += string(key)

	return true
}

// Backspace removes the last character of the input, if any.
func (s *Session) Backspace() {
	r := []rune(s.state.Input)
	if len(r) == 0 {
		return
	}
	s.state.Input = string(r[:len(r)-1])
}

// Clear empties the input.
func (s *Session) Clear() { s.state.Input = "" }

// SetInput replaces the input text, as when the user types or pastes freely.
func (s *Session) SetInput(input string) { s.state.Input = input }

// SetFrom selects the source radix. The input is kept and re-evaluated.
func (s *Session) SetFrom(r domain.Radix) {
	if r.Valid() {
		s.state.From = r
	}
}

// SetTo selects the target radix.
func (s *Session) SetTo(r domain.Radix) {
	if r.Valid() {
		s.state.To = r
	}
}

// Swap exchanges source and target radix. When the current input converts
// successfully, the result becomes the new input so the displayed value is
// preserved.
func (s *Session) Swap() {
	if out := s.Outcome(); out.OK() {
		s.state.Input = out.Result
	}
	s.state.From, s.state.To = s.state.To, s.state.From
}

// Outcome converts the current state.
func (s *Session) Outcome() domain.Outcome {
	st := s.state
	if s.opts.MaxInputLength > 0 && len(st.Input) > s.opts.MaxInputLength && st.From != st.To {
		return domain.Invalid()
	}

	return s.conv.Convert(domain.Request{Input: st.Input, From: st.From, To: st.To})
}

// View converts the current state and maps the outcome to display text.
func (s *Session) View() View {
	out := s.Outcome()
	v := View{
		State:       s.state,
		Outcome:     out,
		Placeholder: "Enter " + s.state.From.Short() + " number...",
		Keypad:      s.Keypad(),
	}

	switch out.Kind {
	case domain.OutcomeEmpty:
	case domain.OutcomeSameBase:
		v.Message = MessageSameBase
	case domain.OutcomeInvalid:
		v.Message = MessageInvalid
	case domain.OutcomeSuccess:
		v.Label = "Result (" + s.state.To.Short() + ")"
		v.Result = out.Result
	}

	return v
}
