package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/isaacjstriker/guessware/games/guess"
)

var (
	ErrInputClosed = errors.New("input closed")
	ErrNotANumber  = errors.New("not a whole number")
	ErrOutOfRange  = errors.New("number out of range")
)

var (
	_ guess.Prompter = (*LinePrompter)(nil)
	_ guess.Prompter = (*TerminalPrompter)(nil)
)

// LinePrompter reads one answer per line. It works on pipes as well as terminals.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// ReadInput prints prompt and reads a line of input from the user
func (p *LinePrompter) ReadInput(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	input, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
	}
	return strings.TrimSpace(input), nil
}

func (p *LinePrompter) Select(label string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("nothing to select")
	}

	fmt.Fprintln(p.out, label)
	for i, item := range items {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, item)
	}

	prompt := fmt.Sprintf("Enter choice (1-%d): ", len(items))
	for {
		input, err := p.ReadInput(prompt)
		if err != nil {
			return 0, err
		}
		if idx, ok := matchItem(input, items); ok {
			return idx, nil
		}
		fmt.Fprintln(p.out, "Please choose one of the listed options.")
	}
}

func matchItem(input string, items []string) (int, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(items) {
			return n - 1, true
		}
		return 0, false
	}
	for i, item := range items {
		if strings.EqualFold(input, item) {
			return i, true
		}
	}
	return 0, false
}

func (p *LinePrompter) Number(label string, low, high int) (int, error) {
	for {
		input, err := p.ReadInput(label + " ")
		if err != nil {
			return 0, err
		}
		n, err := ParseNumber(input, low, high)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "Please enter a whole number between %d and %d.\n", low, high)
	}
}

// ParseNumber accepts input only if it is an integer in [low, high].
func ParseNumber(input string, low, high int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, input)
	}
	if n < low || n > high {
		return 0, fmt.Errorf("%w: %d not in %d-%d", ErrOutOfRange, n, low, high)
	}
	return n, nil
}

func (p *LinePrompter) Confirm(label string) (bool, error) {
	for {
		input, err := p.ReadInput(label + " (y/N) ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// TerminalPrompter uses the arrow-key menu for selections and line input for the rest.
type TerminalPrompter struct {
	*LinePrompter
	Header string
}

func NewTerminalPrompter(in io.Reader, out io.Writer, header string) *TerminalPrompter {
	return &TerminalPrompter{LinePrompter: NewLinePrompter(in, out), Header: header}
}

func (p *TerminalPrompter) Select(label string, items []string) (int, error) {
	menuItems := make([]MenuItem, len(items))
	for i, item := range items {
		menuItems[i] = MenuItem{Label: item, Value: item}
	}

	menu := NewMenu(label, menuItems)
	menu.Header = p.Header
	menu.out = p.out

	idx, err := menu.Show()
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(p.out, "%s %s\n", label, items[idx])
	return idx, nil
}

// NewPrompter picks the terminal prompter when in is an interactive terminal
// and plain is false, and the line prompter otherwise.
func NewPrompter(in *os.File, out io.Writer, header string, plain bool) guess.Prompter {
	if !plain && term.IsTerminal(int(in.Fd())) {
		return NewTerminalPrompter(in, out, header)
	}
	return NewLinePrompter(in, out)
}
