// Package console is the terminal front end of the converter: a one-shot
// outcome writer for the convert command and a line-oriented interactive
// session driving a presenter.Session.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"baseconv/internal/presenter"
	"baseconv/pkg/domain"
	"baseconv/pkg/serrors"
)

// Help lists the commands understood by Run.
const Help = `Type a number to convert it. Commands:
  :from <radix>   select the source radix (bin, oct, dec, hex)
  :to <radix>     select the target radix
  :swap           exchange radices, keeping the converted value
  :back           remove the last character
  :clear          clear the input
  :keys           show the digits valid for the source radix
  :help           show this help
  :quit           leave
`

// WriteOutcome prints a successful result to w. Empty input prints nothing.
// Guard and error outcomes are returned as ErrBadRequest errors carrying the
// display message, so the caller can report them and exit non-zero.
func WriteOutcome(w io.Writer, v presenter.View) error {
	switch v.Outcome.Kind {
	case domain.OutcomeSuccess:
		_, err := fmt.Fprintln(w, v.Result)

		return err //nolint: wrapcheck
	case domain.OutcomeEmpty:
		return nil
	default:
		return serrors.With(serrors.ErrBadRequest, "%s", v.Message)
	}
}

// Render formats a view the way the interactive session shows it.
func Render(v presenter.View) string {
	switch v.Outcome.Kind {
	case domain.OutcomeSuccess:
		return v.Label + ": " + v.Result
	case domain.OutcomeEmpty:
		return v.Placeholder
	default:
		return v.Message
	}
}

func prompt(st presenter.State) string {
	return st.From.Short() + " > " + st.To.Short() + "> "
}

func keys(s *presenter.Session) string {
	digits := s.Keypad()
	parts := make([]string, 0, len(digits)+1)
	for _, d := range digits {
		parts = append(parts, string(d))
	}

	return strings.Join(append(parts, "-"), " ")
}

// exec applies one input line to s and returns the text to show, and whether
// the session should end.
func exec(s *presenter.Session, line string) (string, bool) {
	if !strings.HasPrefix(line, ":") {
		s.SetInput(line)

		return Render(s.View()), false
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "from", "to":
		r, err := domain.ParseRadix(arg)
		if err != nil {
			return serrors.MessageOf(err), false
		}
		if cmd == "from" {
			s.SetFrom(r)
		} else {
			s.SetTo(r)
		}
	case "swap":
		s.Swap()
	case "back":
		s.Backspace()
	case "clear":
		s.Clear()
	case "keys":
		return keys(s), false
	case "help":
		return strings.TrimRight(Help, "\n"), false
	case "quit", "q":
		return "", true
	default:
		return fmt.Sprintf("unknown command %q, type :help", cmd), false
	}

	return Render(s.View()), false
}

// scan feeds the lines of in to lines until EOF or ctx is done. The read
// error, if any, is sent on errc before lines is closed.
func scan(ctx context.Context, in io.Reader, lines chan<- string, errc chan<- error) {
	defer close(lines)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-ctx.Done():
			return
		}
	}
	errc <- sc.Err()
}

// Run reads commands from in until EOF, :quit or ctx is done, writing the
// session view after every line to out. Cancellation is honored while
// waiting for input; a read blocked on in is then abandoned, so in should
// be closed by the caller if it outlives Run.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *presenter.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go scan(ctx, in, lines, errc)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if _, err := io.WriteString(out, prompt(s.State())); err != nil {
			return fmt.Errorf("could not write prompt: %w", err)
		}

		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				_, _ = io.WriteString(out, "\n")

				return readErr(errc)
			}
			line = l
		}

		text, quit := exec(s, line)
		if quit {
			return nil
		}
		if _, err := fmt.Fprintln(out, text); err != nil {
			return fmt.Errorf("could not write view: %w", err)
		}
	}
}

func readErr(errc <-chan error) error {
	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("could not read input: %w", err)
		}
	default:
	}

	return nil
}
