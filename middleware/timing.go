package middleware

import (
	"fmt"
	"time"

	dispatchio "github.com/dzonerzy/go-dispatch/io"
)

// Timing prints an elapsed-time summary line after a handler completes
// successfully. Failed handlers print nothing; their error path owns the
// output.
func Timing() Middleware {
	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) error {
			start := time.Now()
			if err := next(ctx); err != nil {
				return err
			}
			fmt.Fprintf(ctx.Stdout(), "✨ Done in %s.\n", dispatchio.Elapsed(start))
			return nil
		}
	}
}
