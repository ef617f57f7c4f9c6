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

// WriteUsage lists commands sorted by name, each once with its aliases.
func (p *Executor) WriteUsage(w io.Writer) {
	names := make([]string, 0, len(p.commands))
	for name, command := range p.commands {
		if slices.Contains(command.Aliases, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		command := p.commands[name]
		line := name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
	}
}
