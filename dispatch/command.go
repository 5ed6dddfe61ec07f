package dispatch

import "strings"

// Handler is the function executed when a command is dispatched. It receives
// the fully parsed input for this invocation; returning a *UsageError (see
// Usagef) renders the message as a user-facing help failure, returning an
// *ExitError requests a specific exit code, and any other error is treated as
// an unexpected failure.
type Handler func(*Context) error

// Command declares a single dispatchable command. Name is whitespace-tokenized
// into one or more segments, so "db migrate" is a two-segment subcommand
// independent of any "db" command existing.
type Command struct {
	Name        string
	Description string
	HelpText    string
	Flags       map[string]FlagDef
	Handler     Handler
}

// normalizeName collapses runs of whitespace in a command name so that
// registration and resolution agree on a single canonical spelling.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// segments returns the whitespace-split name tokens of the command.
func (c *Command) segments() []string {
	return strings.Fields(c.Name)
}
