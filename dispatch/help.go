package dispatch

import (
	"fmt"
	"io"
	"strings"
)

// renderOverview writes the command-list overview: one line per registered
// command in registry sort order. Commands literally named "debug" are
// filtered out unless the DEBUG environment variable is set.
func (d *Dispatcher) renderOverview(w io.Writer) {
	if d.name != "" {
		fmt.Fprintln(w, d.ioManager.Bold(d.name))
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Commands:")

	debugEnabled := false
	if v, ok := d.lookupEnv("DEBUG"); ok && v != "" {
		debugEnabled = true
	}

	maxNameLen := 0
	visible := make([]*Command, 0, len(d.commands))
	for _, cmd := range d.commands {
		if cmd.Name == "debug" && !debugEnabled {
			continue
		}
		visible = append(visible, cmd)
		if len(cmd.Name) > maxNameLen {
			maxNameLen = len(cmd.Name)
		}
	}

	for _, cmd := range visible {
		padding := strings.Repeat(" ", maxNameLen-len(cmd.Name))
		fmt.Fprintf(w, " • %s%s - %s\n", cmd.Name, padding, cmd.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Use \"%s COMMAND --help\" for more information about a command.\n", d.name)
}

// renderCommandHelp writes the per-command detail view: usage line, long help
// text, and one line per flag with its short alias, type annotation,
// description, and bracketed environment variable and default value. The flag
// list and alias assignment come from the same schema normalization the
// parser uses, so the rendered help cannot drift from parse behavior.
func (d *Dispatcher) renderCommandHelp(w io.Writer, cmd *Command) {
	if cmd.Description != "" {
		fmt.Fprintln(w, cmd.Description)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s %s [FLAGS] [ARGS...]\n", d.name, cmd.Name)

	if cmd.HelpText != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cmd.HelpText)
	}

	specs := specsWithHelp(cmd.Flags)
	aliases := assignShortAliases(specs)

	maxWidth := 0
	markers := make([]string, len(specs))
	for i := range specs {
		markers[i] = flagMarker(&specs[i], aliases)
		if len(markers[i]) > maxWidth {
			maxWidth = len(markers[i])
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	for i := range specs {
		spec := &specs[i]
		padding := strings.Repeat(" ", maxWidth-len(markers[i]))
		line := "  " + markers[i] + padding + "  " + spec.Description
		if spec.EnvVar != "" {
			line += " [env: " + spec.EnvVar + "]"
		}
		if def := spec.displayDefault(); def != "" {
			line += " [default: " + def + "]"
		}
		fmt.Fprintln(w, line)
	}
}

// flagMarker renders the left column of a detail line: the long form, the
// short alias when one was assigned, and the type annotation for valued
// flags.
func flagMarker(spec *NamedFlag, aliases map[string]byte) string {
	marker := "--" + spec.Name
	if alias, ok := aliases[spec.Name]; ok {
		marker += ", -" + string(alias)
	}
	if spec.Type != FlagTypeBool {
		marker += " <" + string(spec.Type) + ">"
	}
	return marker
}
