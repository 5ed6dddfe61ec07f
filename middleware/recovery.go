package middleware

import (
	"fmt"
	"runtime"
)

const stackSize = 8 << 10

// RecoveryError wraps a panic raised inside a command handler.
type RecoveryError struct {
	Panic   any
	Command string
	Stack   []byte
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("panic in command %q: %v", e.Command, e.Panic)
}

// Recovery converts handler panics into a *RecoveryError so a misbehaving
// command cannot take down the whole dispatcher.
func Recovery() Middleware {
	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, stackSize)
					stack = stack[:runtime.Stack(stack, false)]
					err = &RecoveryError{
						Panic:   r,
						Command: ctx.CommandName(),
						Stack:   stack,
					}
				}
			}()
			return next(ctx)
		}
	}
}
