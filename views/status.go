package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/turing/machines"
)

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// Status is a one-line summary of where m stands.
func Status(m *machines.Machine) string {
	switch m.Status() {
	case machines.HaltedAccept:
		return SuccessStyle.Render("✓") + fmt.Sprintf(" accepted in state %s after %d steps", m.State(), m.Steps())
	case machines.HaltedNoRule:
		return ErrorStyle.Render("✗") + " rejected: " + m.ErrorMessage()
	case machines.HaltedStepLimit:
		return WarnStyle.Render("!") + " " + m.ErrorMessage()
	}
	return AccentStyle.Render("●") + fmt.Sprintf(" running in state %s, %d steps", m.State(), m.Steps())
}

// Summary renders the status line, the tape around the head and the final tape contents.
func Summary(m *machines.Machine, window int) string {
	var b strings.Builder
	b.WriteString(Status(m))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("tape: "))
	b.WriteString(Tape(m.Tape(), window))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("result: "))
	b.WriteString(m.Tape().String())
	b.WriteString("\n")
	return b.String()
}
