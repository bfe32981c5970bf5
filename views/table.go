package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

var moveArrows = map[tapes.Direction]string{
	tapes.Left:  "<",
	tapes.Right: ">",
	tapes.Stay:  "!",
}

// Cell formats an action as write symbol, move glyph and next state, like "b>q0".
func Cell(action machines.Action) string {
	return string(action.Write) + moveArrows[action.Move] + action.Next
}

// Transitions renders the transition table, states by rows and tape symbols by columns.
// The cell of the last executed transition is highlighted when tracing is on.
func Transitions(m *machines.Machine) string {
	def := m.Definition()

	headers := make([]string, 0, len(def.TapeAlphabet)+1)
	headers = append(headers, "state")
	for _, symbol := range def.TapeAlphabet {
		headers = append(headers, string(symbol))
	}

	rows := make([][]string, 0, len(def.States))
	for _, state := range def.States {
		label := state
		if m.IsAccept(state) {
			label += "*"
		}
		row := []string{label}
		for _, symbol := range def.TapeAlphabet {
			action, ok := m.Lookup(state, symbol)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, Cell(action))
		}
		rows = append(rows, row)
	}

	hotRow, hotCol := -1, -1
	if last, ok := m.LastTransition(); ok {
		for i, state := range def.States {
			if state == last.From {
				hotRow = i
			}
		}
		for i, symbol := range def.TapeAlphabet {
			if symbol == last.Read {
				hotCol = i + 1
			}
		}
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(purple).
		Bold(true).
		Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	stateStyle := cellStyle.Foreground(dim)
	hotStyle := cellStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(purple)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == hotRow && col == hotCol:
				return hotStyle
			case col == 0:
				return stateStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}

// Trace renders trace records as a table.
func Trace(records []machines.TraceRecord) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(purple).
		Bold(true).
		Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			itoa(int64(r.Step)),
			r.From,
			string(r.Read),
			string(r.Write),
			r.Move.String(),
			r.To,
			itoa(r.Head),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("step", "from", "read", "write", "move", "to", "head").
		Rows(rows...)

	return t.String()
}
