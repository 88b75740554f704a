// Package console implements the interactive line-oriented menus.
// A Router renders a Menu, reads an option from a Session and dispatches it
// to the registered Handler until the exit option or end of input.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrNotANumber is returned when a line cannot be parsed as a number.
// Callers recover from it by prompting again.
var ErrNotANumber = errors.New("input is not a number")

// ══════════════════════════════════════════════════════════════════════════════
// SESSION
// One operator at one terminal. Prompts are written without a trailing
// newline; everything else is written line by line.
// ══════════════════════════════════════════════════════════════════════════════

// Session wraps the input and output streams of one interactive run.
type Session struct {
	// ID correlates log records and domain events of this run.
	ID string

	in  *bufio.Scanner
	out io.Writer
}

// NewSession creates a session over in and out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		ID:  uuid.NewString(),
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Println writes one line.
func (s *Session) Println(line string) {
	fmt.Fprintln(s.out, line)
}

// Print writes text as is.
func (s *Session) Print(text string) {
	fmt.Fprint(s.out, text)
}

// Prompt writes prompt and reads one line without its line terminator.
// Returns io.EOF when the input is exhausted.
func (s *Session) Prompt(prompt string) (string, error) {
	s.Print(prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

// PromptInt reads one line and parses it as a base-10 integer.
// Surrounding whitespace is ignored.
func (s *Session) PromptInt(prompt string) (int, error) {
	line, err := s.Prompt(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, ErrNotANumber)
	}
	return n, nil
}

// PromptFloat reads one line and parses it as a decimal number.
func (s *Session) PromptFloat(prompt string) (float64, error) {
	line, err := s.Prompt(prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, ErrNotANumber)
	}
	return f, nil
}

// PromptNonEmpty asks until a line with non-blank content arrives.
func (s *Session) PromptNonEmpty(prompt string) (string, error) {
	for {
		line, err := s.Prompt(prompt)
		if err != nil {
			return "", err
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
	}
}

// PromptIntUntil asks until check accepts the parsed integer.
// formatMsg is printed for unparsable lines; check returns the message to
// print for rejected values, or "" to accept.
func (s *Session) PromptIntUntil(prompt, formatMsg string, check func(int) string) (int, error) {
	for {
		n, err := s.PromptInt(prompt)
		if errors.Is(err, ErrNotANumber) {
			s.Println(formatMsg)
			continue
		}
		if err != nil {
			return 0, err
		}
		if msg := check(n); msg != "" {
			s.Println(msg)
			continue
		}
		return n, nil
	}
}
