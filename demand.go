package cutstock

import "sort"

// DefaultDemandCap bounds Σqᵢ after normalization (spec.md §3) to guarantee
// termination of every downstream algorithm.
const DefaultDemandCap = 10_000

// demandLine is one normalized (length, quantity, priority) triple: the
// canonical form every downstream component (C2-C9) consumes. Two raw
// DemandInput slices that normalize identically produce byte-identical
// demandLine slices (spec.md §4.1).
type demandLine struct {
	Length   int
	Quantity int
	Priority Priority
}

// normalizeDemand merges duplicate lengths (summing quantity, taking the
// max priority), validates every invariant from spec.md §4.1, and returns
// the canonical form sorted descending by length.
//
// Rejects with ErrEmptyDemand, ErrNonPositiveLength, ErrNonPositiveQuantity,
// ErrLengthExceedsRoll, or ErrDemandCapExceeded.
func normalizeDemand(raw []DemandInput, rollLength int, cap int) ([]demandLine, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyDemand
	}
	if cap <= 0 {
		cap = DefaultDemandCap
	}

	merged := make(map[int]*demandLine, len(raw))
	order := make([]int, 0, len(raw)) // first-seen order, for stable iteration below
	for _, in := range raw {
		if in.Length <= 0 {
			return nil, ErrNonPositiveLength
		}
		if in.Quantity <= 0 {
			return nil, ErrNonPositiveQuantity
		}
		if in.Length > rollLength {
			return nil, ErrLengthExceedsRoll
		}
		if existing, ok := merged[in.Length]; ok {
			existing.Quantity += in.Quantity
			existing.Priority = existing.Priority.max(in.Priority)
			continue
		}
		merged[in.Length] = &demandLine{Length: in.Length, Quantity: in.Quantity, Priority: in.Priority}
		order = append(order, in.Length)
	}

	lines := make([]demandLine, 0, len(order))
	total := 0
	for _, length := range order {
		line := *merged[length]
		lines = append(lines, line)
		total += line.Quantity
	}
	if total > cap {
		return nil, ErrDemandCapExceeded
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Length > lines[j].Length
	})

	return lines, nil
}

// totalQuantity sums Quantity across normalized demand.
func totalQuantity(lines []demandLine) int {
	sum := 0
	for _, l := range lines {
		sum += l.Quantity
	}
	return sum
}

// totalDemandLength sums Length*Quantity across normalized demand; used by
// the LP lower bound (§8.6) and efficiency computation (§4.7).
func totalDemandLength(lines []demandLine) int {
	sum := 0
	for _, l := range lines {
		sum += l.Length * l.Quantity
	}
	return sum
}

// maxLength returns the largest length in normalized demand, or 0 if empty.
// Demand is sorted descending, so this is simply lines[0].Length.
func maxLength(lines []demandLine) int {
	if len(lines) == 0 {
		return 0
	}
	return lines[0].Length
}
