// Package middleware provides the handler wrapping layer for go-dispatch.
// It is defined against a small Context interface to avoid an import cycle
// with the dispatch package, whose *dispatch.Context satisfies it.
package middleware

import stdio "io"

// Context is the slice of the dispatch context that middleware can rely on.
type Context interface {
	// CommandName returns the normalized name of the executing command.
	CommandName() string

	// Args returns the positional arguments for the current command.
	Args() []string

	// Stdout returns the writer for normal command output.
	Stdout() stdio.Writer

	// Stderr returns the writer for diagnostics.
	Stderr() stdio.Writer
}

// ActionFunc is the wrapped form of a command handler.
type ActionFunc func(ctx Context) error

// Middleware wraps an action with behavior that runs before or after it.
type Middleware func(next ActionFunc) ActionFunc

// MiddlewareChain is an ordered list of middleware, outermost first.
type MiddlewareChain []Middleware

// Chain builds a chain from the given middleware in application order.
func Chain(mw ...Middleware) MiddlewareChain {
	return MiddlewareChain(mw)
}

// Apply wraps action with every middleware in the chain. The first middleware
// in the chain runs outermost.
func (c MiddlewareChain) Apply(action ActionFunc) ActionFunc {
	for i := len(c) - 1; i >= 0; i-- {
		action = c[i](action)
	}
	return action
}
