package cutstock

import "context"

// defaultUnitCost is applied when a request does not supply one (spec.md §6).
const defaultUnitCost = 1.0

// Request is the input to Solve (spec.md §6). Build one with NewRequest
// and RequestOptions rather than constructing the struct literal directly,
// the way the teacher's Options/DefaultOptions pairing is built.
type Request struct {
	MasterRollLength int
	UnitCost         float64
	Algorithm        Algorithm
	Goal             Goal
	Demand           []DemandInput
	DemandCap        int
	Cancellation     Cancellation
}

// RequestOption configures a Request built by NewRequest.
type RequestOption func(*Request)

// NewRequest builds a Request for the given master roll length and demand,
// defaulting Algorithm to ColumnGeneration, Goal to MinimizeWaste, and
// UnitCost to 1, then applying opts in order.
func NewRequest(masterRollLength int, demand []DemandInput, opts ...RequestOption) Request {
	r := Request{
		MasterRollLength: masterRollLength,
		UnitCost:         defaultUnitCost,
		Algorithm:        ColumnGeneration,
		Goal:             MinimizeWaste,
		Demand:           demand,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithAlgorithm overrides the solving strategy.
func WithAlgorithm(a Algorithm) RequestOption {
	return func(r *Request) { r.Algorithm = a }
}

// WithGoal overrides the optimization goal.
func WithGoal(g Goal) RequestOption {
	return func(r *Request) { r.Goal = g }
}

// WithUnitCost overrides the per-roll cost used for cost scoring and reporting.
func WithUnitCost(cost float64) RequestOption {
	return func(r *Request) { r.UnitCost = cost }
}

// WithDemandCap overrides the Σqᵢ termination cap (default DefaultDemandCap).
func WithDemandCap(cap int) RequestOption {
	return func(r *Request) { r.DemandCap = cap }
}

// WithCancellation attaches a cancellation token derived from ctx.
func WithCancellation(ctx context.Context) RequestOption {
	return func(r *Request) { r.Cancellation = NewCancellation(ctx) }
}

// Validate checks the request's own invariants (masterRollLength and
// unitCost) without normalizing demand; normalizeDemand performs the
// demand-specific checks when Solve runs.
func (r Request) Validate() error {
	if r.MasterRollLength <= 0 {
		return ErrNonPositiveRollLength
	}
	if r.UnitCost < 0 {
		return ErrNonPositiveRollLength
	}
	return nil
}

// RangeRequest is the input to SolveRange (spec.md §6): a solve-request
// with MasterRollLength replaced by a (min, max, step) sweep.
type RangeRequest struct {
	MinRollLength int
	MaxRollLength int
	Step          int
	UnitCost      float64
	Algorithm     Algorithm
	Goal          Goal
	Demand        []DemandInput
	DemandCap     int
	Cancellation  Cancellation
}

// Validate checks the range's own invariants (spec.md §7: Lmin > Lmax or
// step <= 0 is InvalidInput).
func (r RangeRequest) Validate() error {
	if r.MinRollLength <= 0 || r.MaxRollLength <= 0 {
		return ErrNonPositiveRollLength
	}
	if r.MinRollLength > r.MaxRollLength || r.Step <= 0 {
		return ErrBadRange
	}
	return nil
}
