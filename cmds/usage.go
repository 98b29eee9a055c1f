package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if seen[command] {
			continue
		}
		seen[command] = true
		printCommand(name, command, 0)
	}
}

func printCommand(name string, command *Command, depth int) {
	indent := strings.Repeat("\t", depth+1)
	fmt.Fprintf(os.Stderr, "%s%s", indent, name)
	if command == nil {
		fmt.Fprintf(os.Stderr, "\n")
		return
	}
	if len(command.Aliases) > 0 {
		fmt.Fprintf(os.Stderr, " (%s)", strings.Join(command.Aliases, ", "))
	}
	if command.Description != "" {
		fmt.Fprintf(os.Stderr, "\t%s", command.Description)
	}
	fmt.Fprintf(os.Stderr, "\n")
	for _, subName := range slices.Sorted(maps.Keys(command.Subs)) {
		printCommand(subName, command.Subs[subName], depth+1)
	}
}
