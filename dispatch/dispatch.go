package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	dispatchio "github.com/dzonerzy/go-dispatch/io"
	"github.com/dzonerzy/go-dispatch/internal/fuzzy"
	"github.com/dzonerzy/go-dispatch/middleware"
)

// EnvLookup is the environment capability injected into the parser for flag
// fallback. It defaults to os.LookupEnv; tests swap in a map-backed lookup.
type EnvLookup func(key string) (string, bool)

var _ middleware.Context = (*Context)(nil)

// Dispatcher owns the validated, sorted command set for one process
// invocation and orchestrates resolve -> parse -> handler. Built once at
// startup; immutable thereafter.
type Dispatcher struct {
	name        string
	commands    []*Command
	byName      map[string]*Command
	maxSegments int

	ioManager  *dispatchio.IOManager
	lookupEnv  EnvLookup
	middleware []middleware.Middleware
}

// New validates the registered command set and returns a Dispatcher. It fails
// fast with a *SchemaError when the set is empty, a command lacks a name or
// handler, two commands share a normalized name, a flag lacks a description,
// or a flag default has an unsupported type.
func New(name string, cmds ...Command) (*Dispatcher, error) {
	if len(cmds) == 0 {
		return nil, schemaErrorf("no commands registered")
	}

	d := &Dispatcher{
		name:      name,
		commands:  make([]*Command, 0, len(cmds)),
		byName:    make(map[string]*Command, len(cmds)),
		ioManager: dispatchio.New(),
		lookupEnv: os.LookupEnv,
	}

	for i := range cmds {
		cmd := cmds[i]
		normalized := normalizeName(cmd.Name)
		if normalized == "" {
			return nil, schemaErrorf("command %d has no name", i)
		}
		if cmd.Handler == nil {
			return nil, schemaErrorf("command %q has no handler", normalized)
		}
		if _, dup := d.byName[normalized]; dup {
			return nil, schemaErrorf("duplicate command name %q", normalized)
		}
		for flagName, def := range cmd.Flags {
			if flagName == "help" {
				return nil, schemaErrorf("flag name %q of command %q is reserved", flagName, normalized)
			}
			if def.Description == "" {
				return nil, schemaErrorf("flag %q of command %q has no description", flagName, normalized)
			}
			if _, ok := flagTypeOf(def.Default); !ok {
				return nil, schemaErrorf(
					"flag %q of command %q has unsupported default type %T", flagName, normalized, def.Default)
			}
		}

		cmd.Name = normalized
		d.byName[normalized] = &cmd
		d.commands = append(d.commands, &cmd)
		if n := len(cmd.segments()); n > d.maxSegments {
			d.maxSegments = n
		}
	}

	sort.Slice(d.commands, func(i, j int) bool { return d.commands[i].Name < d.commands[j].Name })
	return d, nil
}

// IO returns the dispatcher's IOManager for fluent configuration.
func (d *Dispatcher) IO() *dispatchio.IOManager {
	return d.ioManager
}

// WithEnvLookup replaces the environment capability used for flag fallback.
func (d *Dispatcher) WithEnvLookup(fn EnvLookup) *Dispatcher {
	d.lookupEnv = fn
	return d
}

// Use appends middleware around every handler invocation, inside the built-in
// recovery and timing layers.
func (d *Dispatcher) Use(mw ...middleware.Middleware) *Dispatcher {
	d.middleware = append(d.middleware, mw...)
	return d
}

// Run resolves and executes a command for the given argument list. An empty
// list or a bare help flag renders the command overview and returns
// ErrHelpShown. All other outcomes surface as the handler's result or a
// typed dispatch error; Run never calls os.Exit.
func (d *Dispatcher) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || isBareHelp(args) {
		d.renderOverview(d.ioManager.Out())
		return ErrHelpShown
	}
	return d.dispatch(ctx, args)
}

// RunAndGetExitCode executes Run, prints any error with its help context, and
// returns the mapped exit code. Useful for embedding in main() without
// os.Exit.
func (d *Dispatcher) RunAndGetExitCode(ctx context.Context, args []string) int {
	return d.report(d.Run(ctx, args))
}

// RunAndExit executes the dispatcher and terminates the process with the
// mapped exit code.
func (d *Dispatcher) RunAndExit(ctx context.Context, args []string) {
	os.Exit(d.RunAndGetExitCode(ctx, args))
}

// dispatch runs one resolve -> parse -> handler cycle. Context.Invoke
// re-enters here for nested command execution; each entry builds a fresh
// Context.
func (d *Dispatcher) dispatch(ctx context.Context, args []string) error {
	cmd, remaining, err := d.resolve(args)
	if err != nil {
		return err
	}

	values, positional, err := d.parse(cmd, remaining)
	if err != nil {
		return err
	}

	if help, _ := values["help"].(bool); help {
		d.renderCommandHelp(d.ioManager.Out(), cmd)
		return ErrHelpShown
	}

	c := &Context{
		dispatcher: d,
		ctx:        ctx,
		command:    cmd,
		values:     values,
		args:       positional,
	}

	action := d.wrapHandler(cmd.Handler)
	if err := action(c); err != nil {
		var usage *UsageError
		if errors.As(err, &usage) && usage.Command == nil {
			usage.Command = cmd
		}
		return err
	}
	return nil
}

// resolve finds the command whose normalized name equals the longest prefix
// of args, checked by decreasing prefix length. The registry's uniqueness
// invariant guarantees at most one match per exact name.
func (d *Dispatcher) resolve(args []string) (*Command, []string, error) {
	if len(args) == 0 {
		return nil, nil, &UsageError{
			Type:    ErrorTypeUnknownCommand,
			Message: "no matched command",
		}
	}

	longest := d.maxSegments
	if len(args) < longest {
		longest = len(args)
	}
	for n := longest; n >= 1; n-- {
		name := normalizeName(strings.Join(args[:n], " "))
		if cmd, ok := d.byName[name]; ok {
			return cmd, args[n:], nil
		}
	}

	attempted := strings.Join(args, " ")
	names := make([]string, 0, len(d.commands))
	for _, cmd := range d.commands {
		names = append(names, cmd.Name)
	}
	return nil, nil, &UsageError{
		Type:       ErrorTypeUnknownCommand,
		Message:    "no matched command: " + attempted,
		Suggestion: fuzzy.Closest(args[0], names, 2),
	}
}

// wrapHandler layers the built-in recovery and timing middleware, plus any
// user middleware, around the command handler.
func (d *Dispatcher) wrapHandler(handler Handler) Handler {
	mw := make([]middleware.Middleware, 0, len(d.middleware)+2)
	mw = append(mw, middleware.Recovery())
	mw = append(mw, d.middleware...)
	mw = append(mw, middleware.Timing())

	wrapped := middleware.Chain(mw...).Apply(func(ctx middleware.Context) error {
		c, ok := ctx.(*Context)
		if !ok {
			return schemaErrorf("invalid middleware context type %T", ctx)
		}
		return handler(c)
	})

	return func(c *Context) error {
		return wrapped(c)
	}
}

// report prints err with its help context and returns the process exit code:
// 0 for success or voluntary help, an explicit ExitError code when requested,
// 1 otherwise. Usage errors print their message followed by the help view for
// their scope.
func (d *Dispatcher) report(err error) int {
	if err == nil || errors.Is(err, ErrHelpShown) {
		return 0
	}

	out := d.ioManager.Out()
	errW := d.ioManager.Err()

	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(errW, d.ioManager.Bold("Error:"), usage.Message)
		if usage.Suggestion != "" {
			fmt.Fprintf(errW, "  Did you mean %q?\n", usage.Suggestion)
		}
		if usage.Command != nil {
			d.renderCommandHelp(out, usage.Command)
		} else {
			d.renderOverview(out)
		}
		return 1
	}

	var exit *ExitError
	if errors.As(err, &exit) {
		if exit.Err != nil {
			fmt.Fprintln(errW, d.ioManager.Bold("Error:"), exit.Err.Error())
		}
		return exit.Code
	}

	fmt.Fprintln(errW, d.ioManager.Bold("Error:"), err.Error())
	return 1
}

// isBareHelp reports whether the argument list is nothing but a help flag.
func isBareHelp(args []string) bool {
	return len(args) == 1 && (args[0] == "--help" || args[0] == "-h")
}
