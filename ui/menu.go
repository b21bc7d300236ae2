package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/eiannone/keyboard"
)

var ErrMenuAborted = errors.New("menu aborted")

type MenuItem struct {
	Label string
	Value string
}

type Menu struct {
	Header   string
	Title    string
	Items    []MenuItem
	Selected int
	Width    int

	out    io.Writer
	clear  func()
	open   func() error
	close  func()
	getKey func() (rune, keyboard.Key, error)
}

func NewMenu(title string, items []MenuItem) *Menu {
	m := &Menu{
		Title:    title,
		Items:    items,
		Selected: 0,
		Width:    60,
		out:      os.Stdout,
		open:     keyboard.Open,
		close:    func() { keyboard.Close() },
		getKey:   keyboard.GetKey,
	}
	m.clear = m.clearScreen
	return m
}

func (m *Menu) clearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = m.out
	cmd.Run()
}

func (m *Menu) border(left, fill, right string) string {
	return left + strings.Repeat(fill, m.Width-2) + right
}

func (m *Menu) centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width-4 {
		return string([]rune(text)[:width-4])
	}
	padding := (width - n - 4) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-n-padding-4)
}

func (m *Menu) render() {
	m.clear()

	if m.Header != "" {
		fmt.Fprintln(m.out, m.centerText(m.Header, m.Width))
		fmt.Fprintln(m.out)
	}

	fmt.Fprintln(m.out, m.border("╔", "═", "╗"))
	fmt.Fprintf(m.out, "║ %s ║\n", m.centerText(m.Title, m.Width))
	fmt.Fprintln(m.out, m.border("╠", "═", "╣"))

	for i, item := range m.Items {
		prefix := "  "
		if i == m.Selected {
			prefix = "► "
		}
		paddedText := m.centerText(prefix+item.Label, m.Width)

		if i == m.Selected {
			fmt.Fprintf(m.out, "║ \033[7m%s\033[0m ║\n", paddedText) // highlighted
		} else {
			fmt.Fprintf(m.out, "║ %s ║\n", paddedText)
		}
	}

	fmt.Fprintln(m.out, m.border("╚", "═", "╝"))
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Use ↑/↓ arrows to navigate, Enter to select, 'q' to quit")
}

func (m *Menu) moveUp() {
	if m.Selected > 0 {
		m.Selected--
	} else {
		m.Selected = len(m.Items) - 1 // wrap to bottom
	}
}

func (m *Menu) moveDown() {
	if m.Selected < len(m.Items)-1 {
		m.Selected++
	} else {
		m.Selected = 0 // wrap to top
	}
}

// handleKey applies one key press. done is true once a choice is made.
func (m *Menu) handleKey(char rune, key keyboard.Key) (done bool, err error) {
	switch key {
	case keyboard.KeyArrowUp:
		m.moveUp()
	case keyboard.KeyArrowDown:
		m.moveDown()
	case keyboard.KeyEnter:
		return true, nil
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return true, ErrMenuAborted
	}

	switch char {
	case 'q', 'Q':
		return true, ErrMenuAborted
	case 'k':
		m.moveUp()
	case 'j':
		m.moveDown()
	}
	return false, nil
}

// Show renders the menu until the player picks an item and returns its index.
func (m *Menu) Show() (int, error) {
	if len(m.Items) == 0 {
		return 0, errors.New("menu has no items")
	}
	if err := m.open(); err != nil {
		return 0, fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer m.close()

	for {
		m.render()

		char, key, err := m.getKey()
		if err != nil {
			return 0, fmt.Errorf("failed to read key: %w", err)
		}

		done, err := m.handleKey(char, key)
		if err != nil {
			return 0, err
		}
		if done {
			return m.Selected, nil
		}
	}
}
