package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	calcFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	calcDisplayStyle = lipgloss.NewStyle().
				Width(24).
				Align(lipgloss.Right).
				Bold(true)
	calcHintStyle = lipgloss.NewStyle().Faint(true)
)

// Calculator is a four-function calculator model.
type Calculator struct {
	display  string // what the user is typing
	acc      float64
	pending  byte // one of + - * /, or 0
	fresh    bool // next digit starts a new number
	err      bool // divide by zero shows an error until cleared
	quitting bool
}

// NewCalculator returns a cleared calculator.
func NewCalculator() Calculator {
	return Calculator{display: "0", fresh: true}
}

func (c Calculator) Init() tea.Cmd { return nil }

// Update handles one key. Digits build the display, operators fold the
// pending operation, enter or = evaluates, c clears, q quits.
func (c Calculator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		c.quitting = true
		return c, tea.Quit
	case "c":
		return NewCalculator(), nil
	}

	if c.err {
		return c, nil // only c or q get out of an error
	}

	s := key.String()
	switch {
	case len(s) == 1 && s[0] >= '0' && s[0] <= '9':
		if c.fresh {
			c.display = s
			c.fresh = false
		} else {
			c.display += s
		}
	case s == ".":
		if c.fresh {
			c.display = "0."
			c.fresh = false
		} else if !strings.Contains(c.display, ".") {
			c.display += "."
		}
	case s == "+" || s == "-" || s == "*" || s == "/":
		c = c.fold()
		if !c.err {
			c.pending = s[0]
			c.fresh = true
		}
	case s == "=" || s == "enter":
		c = c.fold()
		if !c.err {
			c.pending = 0
			c.fresh = true
		}
	case s == "backspace":
		if !c.fresh && len(c.display) > 1 {
			c.display = c.display[:len(c.display)-1]
		} else if !c.fresh {
			c.display = "0"
			c.fresh = true
		}
	}
	return c, nil
}

// fold applies the pending operation to the accumulator and the display.
func (c Calculator) fold() Calculator {
	cur, err := strconv.ParseFloat(c.display, 64)
	if err != nil {
		cur = 0
	}

	switch c.pending {
	case 0:
		c.acc = cur
	case '+':
		c.acc += cur
	case '-':
		c.acc -= cur
	case '*':
		c.acc *= cur
	case '/':
		if cur == 0 {
			c.err = true
			c.display = "divide by zero"
			return c
		}
		c.acc /= cur
	}
	c.display = formatNumber(c.acc)
	return c
}

// Display exposes the current readout, for composition and tests.
func (c Calculator) Display() string { return c.display }

func (c Calculator) View() string {
	if c.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(calcFrameStyle.Render(calcDisplayStyle.Render(c.display)))
	b.WriteString("\n")
	b.WriteString(calcHintStyle.Render("digits  + - * /  = evaluate  c clear  q quit"))
	b.WriteString("\n")
	return b.String()
}

func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) > 18 {
		s = fmt.Sprintf("%.10g", v)
	}
	return s
}
