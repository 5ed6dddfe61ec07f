package dispatch

import (
	"context"
	stdio "io"
	"time"

	dispatchio "github.com/dzonerzy/go-dispatch/io"
)

// Context is the parsed input handed to a command handler: the coerced flag
// values, the positional arguments, and the means to re-enter the dispatcher.
// One Context is created per invocation (nested invocations included) and is
// not retained after the handler returns.
type Context struct {
	dispatcher *Dispatcher
	ctx        context.Context
	command    *Command
	values     map[string]any
	args       []string
}

// Context returns the underlying Go context for cancellation and deadlines.
func (c *Context) Context() context.Context {
	return c.ctx
}

// CommandName returns the normalized name of the executing command.
func (c *Context) CommandName() string {
	return c.command.Name
}

// Args returns the positional arguments in the order they appeared.
func (c *Context) Args() []string {
	return c.args
}

// NArgs returns the number of positional arguments.
func (c *Context) NArgs() int {
	return len(c.args)
}

// Arg returns the positional argument at index i, or "" when out of range.
func (c *Context) Arg(i int) string {
	if i >= 0 && i < len(c.args) {
		return c.args[i]
	}
	return ""
}

// Value returns the raw coerced value for a flag and whether it was declared.
// After defaulting, every declared flag has an entry.
func (c *Context) Value(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// String retrieves a string flag value; undeclared or mistyped flags yield "".
func (c *Context) String(name string) string {
	v, _ := c.values[name].(string)
	return v
}

// Number retrieves a numeric flag value as float64.
func (c *Context) Number(name string) float64 {
	v, _ := c.values[name].(float64)
	return v
}

// Int retrieves a numeric flag value truncated to int.
func (c *Context) Int(name string) int {
	return int(c.Number(name))
}

// Bool retrieves a boolean flag value.
func (c *Context) Bool(name string) bool {
	v, _ := c.values[name].(bool)
	return v
}

// Time retrieves a timestamp flag value.
func (c *Context) Time(name string) time.Time {
	v, _ := c.values[name].(time.Time)
	return v
}

// Invoke re-enters the dispatcher with a new argument list. The call is fully
// sequential: it returns once the nested command (which receives its own
// Context) has completed. Recursion depth is bounded only by the caller.
func (c *Context) Invoke(args ...string) error {
	return c.dispatcher.dispatch(c.ctx, args)
}

// ShowHelp renders this command's detail help view.
func (c *Context) ShowHelp() {
	c.dispatcher.renderCommandHelp(c.dispatcher.ioManager.Out(), c.command)
}

// IO accessors.

func (c *Context) IO() *dispatchio.IOManager { return c.dispatcher.ioManager }
func (c *Context) Stdout() stdio.Writer      { return c.dispatcher.ioManager.Out() }
func (c *Context) Stderr() stdio.Writer      { return c.dispatcher.ioManager.Err() }
func (c *Context) Stdin() stdio.Reader       { return c.dispatcher.ioManager.In() }
