package cutstock

import "errors"

// Sentinel errors returned by the cutstock engine. Each groups under one of
// the four error kinds named by ErrorKind; callers that only care about the
// kind should use KindOf rather than comparing against a specific sentinel.
var (
	// ErrEmptyDemand indicates the demand list has no entries.
	ErrEmptyDemand = errors.New("cutstock: demand is empty")

	// ErrNonPositiveLength indicates a piece length <= 0.
	ErrNonPositiveLength = errors.New("cutstock: piece length must be positive")

	// ErrNonPositiveQuantity indicates a piece quantity <= 0.
	ErrNonPositiveQuantity = errors.New("cutstock: piece quantity must be positive")

	// ErrLengthExceedsRoll indicates a piece length greater than the master roll length.
	ErrLengthExceedsRoll = errors.New("cutstock: piece length exceeds master roll length")

	// ErrDemandCapExceeded indicates total requested quantity exceeds the configured cap.
	ErrDemandCapExceeded = errors.New("cutstock: total demand quantity exceeds the configured cap")

	// ErrNonPositiveRollLength indicates masterRollLength <= 0.
	ErrNonPositiveRollLength = errors.New("cutstock: master roll length must be positive")

	// ErrBadRange indicates an invalid (min, max, step) range for SolveRange.
	ErrBadRange = errors.New("cutstock: range requires min <= max and a positive step")

	// ErrNoFeasibleLength indicates every L in a range sweep was infeasible.
	ErrNoFeasibleLength = errors.New("cutstock: no master roll length in the range is feasible")

	// ErrDPBudgetExceeded indicates the knapsack DP table would exceed DefaultMaxDPCells
	// and the branch-and-bound fallback also exceeded its node budget.
	ErrDPBudgetExceeded = errors.New("cutstock: knapsack DP cell budget exceeded")

	// ErrBBNodeBudget indicates the branch-and-bound fallback pricer exhausted
	// its search-node budget without the DP table ever being a viable option.
	ErrBBNodeBudget = errors.New("cutstock: branch-and-bound node budget exceeded")

	// ErrLPResourceFailure indicates the LP backend reported a memory failure.
	ErrLPResourceFailure = errors.New("cutstock: LP backend reported a memory failure")

	// ErrCancelled indicates the caller's cancellation token fired.
	ErrCancelled = errors.New("cutstock: operation cancelled")

	// ErrLPInfeasible indicates the LP backend reported infeasible/unbounded
	// unexpectedly for a master problem that is trivially feasible by construction.
	ErrLPInfeasible = errors.New("cutstock: LP backend reported the master problem infeasible or unbounded")

	// ErrNumericOverflow indicates numerical overflow while computing duals.
	ErrNumericOverflow = errors.New("cutstock: numerical overflow in dual values")
)

// ErrorKind coarsely classifies a cutstock error, matching spec.md §7's
// "error kinds, not exception classes" policy: callers branch on KindOf(err)
// rather than on a specific sentinel.
type ErrorKind int

const (
	// KindUnknown is returned by KindOf for errors the engine did not produce.
	KindUnknown ErrorKind = iota

	// KindInvalidInput covers malformed requests: surfaced immediately, no report produced.
	KindInvalidInput

	// KindResourceExceeded covers DP/branch-and-bound/LP resource budgets being exhausted.
	KindResourceExceeded

	// KindCancelled covers a fired cancellation token.
	KindCancelled

	// KindBackendFailure covers LP backend infeasibility/overflow surprises.
	KindBackendFailure
)

// String renders the error kind for diagnostics.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindResourceExceeded:
		return "resource_exceeded"
	case KindCancelled:
		return "cancelled"
	case KindBackendFailure:
		return "backend_failure"
	default:
		return "unknown"
	}
}

// KindOf classifies err into one of the four policy kinds from spec.md §7.
// It unwraps with errors.Is, so wrapped sentinels classify correctly.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrEmptyDemand),
		errors.Is(err, ErrNonPositiveLength),
		errors.Is(err, ErrNonPositiveQuantity),
		errors.Is(err, ErrLengthExceedsRoll),
		errors.Is(err, ErrDemandCapExceeded),
		errors.Is(err, ErrNonPositiveRollLength),
		errors.Is(err, ErrBadRange),
		errors.Is(err, ErrNoFeasibleLength):
		return KindInvalidInput
	case errors.Is(err, ErrDPBudgetExceeded),
		errors.Is(err, ErrBBNodeBudget),
		errors.Is(err, ErrLPResourceFailure):
		return KindResourceExceeded
	case errors.Is(err, ErrCancelled):
		return KindCancelled
	case errors.Is(err, ErrLPInfeasible),
		errors.Is(err, ErrNumericOverflow):
		return KindBackendFailure
	default:
		return KindUnknown
	}
}

// downgradable reports whether err is one of the two kinds that, per
// spec.md §7, are downgraded to a HYBRID fallback during column generation
// instead of aborting the solve.
func downgradable(err error) bool {
	k := KindOf(err)
	return k == KindResourceExceeded || k == KindBackendFailure
}
