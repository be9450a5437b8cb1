package cmds

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

var ErrUsagePrinted = errors.New("usage printed")

var UsageOutput io.Writer = os.Stderr

func (p *Executor) PrintUsage() {
	seen := make(map[*Command]bool)
	var lines []string
	for name, command := range p.commands {
		if seen[command] {
			continue
		}
		seen[command] = true
		names := slices.Concat([]string{name}, command.Aliases)
		slices.Sort(names)
		lines = append(lines, fmt.Sprintf("  %-24s %s", strings.Join(names, ", "), command.Description))
	}
	slices.Sort(lines)
	fmt.Fprintln(UsageOutput, "usage:")
	for _, line := range lines {
		fmt.Fprintln(UsageOutput, line)
	}
}
