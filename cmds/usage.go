package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command value, print each once under its first name
	seen := make(map[*Command]bool)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		cmd := commands[name]
		if cmd == nil || seen[cmd] || slices.Contains(cmd.Aliases, name) {
			continue
		}
		seen[cmd] = true
		line := indent + name
		if len(cmd.Aliases) > 0 {
			line += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		if cmd.Func.IsValid() {
			for i := range cmd.Func.Type().NumIn() {
				line += fmt.Sprintf(" <%v>", cmd.Func.Type().In(i))
			}
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			writeCommands(w, cmd.Subs, depth+1)
		}
	}
}
