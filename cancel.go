package cutstock

import "context"

// Cancellation is the opaque token passed from a caller (typically the range
// driver, spec.md §5) down into a single solve. It wraps a context.Context,
// the idiomatic Go cancellation primitive, the way the teacher's flow
// package threads one through FlowOptions.Ctx for the same purpose.
//
// The zero value is a valid, never-cancelled token.
type Cancellation struct {
	ctx context.Context
}

// NewCancellation wraps ctx as a Cancellation token. A nil ctx is treated as
// context.Background() (never cancelled).
func NewCancellation(ctx context.Context) Cancellation {
	if ctx == nil {
		ctx = context.Background()
	}
	return Cancellation{ctx: ctx}
}

// fired reports whether the token's context has been cancelled or its
// deadline exceeded. The solver checks this at the top of every column-
// generation iteration and at every outer DP-row boundary in the knapsack
// pricer (spec.md §5).
func (c Cancellation) fired() bool {
	if c.ctx == nil {
		return false
	}
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}
