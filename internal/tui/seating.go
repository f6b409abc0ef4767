package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toybox/internal/domain"
)

const (
	seatFree     = '.'
	seatReserved = 'x'
)

var (
	seatFreeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	seatReservedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	seatCursorStyle   = lipgloss.NewStyle().Reverse(true)
	seatScreenStyle   = lipgloss.NewStyle().Faint(true).Align(lipgloss.Center)
)

type seatKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k seatKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Quit}
}

func (k seatKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Toggle, k.Quit}}
}

var seatKeys = seatKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "save+quit")),
}

// Seating is the movie-theater demo: move the cursor, toggle seats, and
// the map is saved on quit.
type Seating struct {
	rows     []string
	curRow   int
	curSeat  int
	store    domain.SeatStore
	help     help.Model
	saveErr  error
	quitting bool
}

// NewSeating builds a theater of rows×seats, restoring any saved map of
// the same shape from the store.
func NewSeating(rows, seats int, store domain.SeatStore) (Seating, error) {
	if rows < 1 || seats < 1 {
		return Seating{}, fmt.Errorf("theater must have at least one row and seat")
	}

	m := Seating{store: store, help: help.New()}
	if store != nil {
		saved, ok, err := store.LoadSeats()
		if err != nil {
			return Seating{}, err
		}
		if ok {
			m.rows = conformRows(saved.Rows, rows, seats)
			return m, nil
		}
	}

	blank := strings.Repeat(string(seatFree), seats)
	for i := 0; i < rows; i++ {
		m.rows = append(m.rows, blank)
	}
	return m, nil
}

// conformRows fits a saved map to rows×seats. The file is meant to be
// hand-editable, so rows may come back ragged or with stray glyphs: each
// row is padded or truncated to the requested width, extra rows are
// dropped, and anything that is not a reserved marker reads as free.
func conformRows(saved []string, rows, seats int) []string {
	out := make([]string, rows)
	for r := range out {
		b := make([]byte, seats)
		for s := 0; s < seats; s++ {
			b[s] = seatFree
			if r < len(saved) && s < len(saved[r]) && saved[r][s] == seatReserved {
				b[s] = seatReserved
			}
		}
		out[r] = string(b)
	}
	return out
}

func (m Seating) Init() tea.Cmd { return nil }

func (m Seating) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, seatKeys.Quit):
		if m.store != nil {
			m.saveErr = m.store.SaveSeats(domain.SeatMap{Rows: m.rows})
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, seatKeys.Up):
		if m.curRow > 0 {
			m.curRow--
		}
	case key.Matches(keyMsg, seatKeys.Down):
		if m.curRow < len(m.rows)-1 {
			m.curRow++
		}
	case key.Matches(keyMsg, seatKeys.Left):
		if m.curSeat > 0 {
			m.curSeat--
		}
	case key.Matches(keyMsg, seatKeys.Right):
		if m.curSeat < len(m.rows[m.curRow])-1 {
			m.curSeat++
		}
	case key.Matches(keyMsg, seatKeys.Toggle):
		m.rows[m.curRow] = toggleSeat(m.rows[m.curRow], m.curSeat)
	}
	return m, nil
}

func toggleSeat(row string, i int) string {
	b := []byte(row)
	if b[i] == seatFree {
		b[i] = seatReserved
	} else {
		b[i] = seatFree
	}
	return string(b)
}

// Reserved counts taken seats, for the status line and tests.
func (m Seating) Reserved() int {
	n := 0
	for _, row := range m.rows {
		n += strings.Count(row, string(seatReserved))
	}
	return n
}

// SeatAt reports whether the seat at (row, seat) is reserved.
func (m Seating) SeatAt(row, seat int) bool {
	return m.rows[row][seat] == seatReserved
}

func (m Seating) View() string {
	if m.quitting {
		return ""
	}

	width := len(m.rows[0])*2 + 4
	var b strings.Builder
	b.WriteString(seatScreenStyle.Width(width).Render("SCREEN"))
	b.WriteString("\n\n")

	for r, row := range m.rows {
		b.WriteString(fmt.Sprintf("%c  ", 'A'+r))
		for s := 0; s < len(row); s++ {
			glyph := string(row[s])
			style := seatFreeStyle
			if row[s] == seatReserved {
				style = seatReservedStyle
			}
			if r == m.curRow && s == m.curSeat {
				style = seatCursorStyle
			}
			b.WriteString(style.Render(glyph))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n%d reserved  ", m.Reserved()))
	b.WriteString(m.help.View(seatKeys))
	b.WriteString("\n")
	return b.String()
}
