package stats

// topDepths is the number of top-of-tree recursion depths the progress
// estimator tracks.
const topDepths = 5

// ProgressEstimator implements the search's best-effort progress
// estimate over the first five recursion depths. It is explicitly not a
// measure of total work completed, only of how far exploration has gone
// through the widest, shallowest part of the search tree. Not safe for
// concurrent use; each worker owns one instance.
type ProgressEstimator struct {
	seen  [topDepths]bool
	total [topDepths]int
	index [topDepths]int
}

// RegisterDepth records the branch count at depth the first time that
// depth is entered; later calls for the same depth are no-ops. Depths at
// or beyond topDepths are ignored.
func (p *ProgressEstimator) RegisterDepth(depth, branchCount int) {
	if depth < 0 || depth >= topDepths || p.seen[depth] {
		return
	}
	p.seen[depth] = true
	p.total[depth] = branchCount
}

// Advance increments the candidate index at depth, called each time the
// driver tries a new candidate there. Depths at or beyond topDepths are
// ignored.
func (p *ProgressEstimator) Advance(depth int) {
	if depth < 0 || depth >= topDepths {
		return
	}
	p.index[depth]++
}

// Estimate returns the percentage through the first not-yet-exhausted
// tracked depth, i(d)/N(d)*100 at the shallowest depth d where
// i(d) < N(d). Returns 0 if no depth has been registered yet, and 100 if
// every registered depth has been fully exhausted.
func (p *ProgressEstimator) Estimate() float64 {
	anySeen := false
	for d := 0; d < topDepths; d++ {
		if !p.seen[d] {
			continue
		}
		anySeen = true
		if p.total[d] == 0 {
			continue
		}
		if p.index[d] < p.total[d] {
			return float64(p.index[d]) / float64(p.total[d]) * 100
		}
	}
	if !anySeen {
		return 0
	}
	return 100
}
