package bruteforce

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"
)

// noCandidate marks a best index that was never assigned.
const noCandidate = int64(-1)

// checkMask sets how often the scan polls its context (every 4096 candidates).
const checkMask = 4095

// engine holds the prefetched problem shared read-only by all workers.
type engine struct {
	rows int         // R
	vars int         // P
	cols [][]float64 // cols[p] = column p of A_d, length R
	rhs  []float64   // b, length R
}

// best is a worker-local incumbent.
type best struct {
	index     int64   // enumeration index, noCandidate until the first evaluation
	norm      float64 // residual norm of index
	evaluated int64   // candidates evaluated by this worker
	stopped   bool    // context ended the scan early
}

// newEngine splits the row-major buffer of A_d into columns.
func newEngine(data []float64, rows, vars int, rhs []float64) *engine {
	cols := make([][]float64, vars)
	var i, p int
	for p = 0; p < vars; p++ {
		cols[p] = make([]float64, rows)
		for i = 0; i < rows; i++ {
			cols[p][i] = data[i*vars+p]
		}
	}

	return &engine{rows: rows, vars: vars, cols: cols, rhs: rhs}
}

// bit reports bit p (0 = most significant) of candidate index i.
func (e *engine) bit(i int64, p int) bool {
	return (i>>uint(e.vars-1-p))&1 == 1
}

// norm computes ‖A_d·q_i − b‖₂ into the scratch buffer res.
func (e *engine) norm(i int64, res []float64) float64 {
	for r := range res {
		res[r] = 0
	}
	for p := 0; p < e.vars; p++ {
		if e.bit(i, p) {
			floats.Add(res, e.cols[p])
		}
	}
	floats.Sub(res, e.rhs)

	return floats.Norm(res, 2)
}

// scan evaluates indices [lo, hi) in increasing order and returns the first
// index with the strictly smallest norm. The context is polled before the
// first candidate and then every checkMask+1 candidates.
func (e *engine) scan(ctx context.Context, lo, hi int64) best {
	b := best{index: noCandidate, norm: math.Inf(1)}
	res := make([]float64, e.rows)

	var (
		i int64
		n float64
	)
	for i = lo; i < hi; i++ {
		if (i-lo)&checkMask == 0 && ctx.Err() != nil {
			b.stopped = true
			break
		}
		n = e.norm(i, res)
		b.evaluated++
		if b.index == noCandidate || n < b.norm {
			b.index, b.norm = i, n
		}
	}

	return b
}

// merge folds chunk results, given in ascending chunk order, into one best.
// A later chunk replaces the incumbent only on a strictly smaller norm, which
// preserves the lowest-index tie-break of the sequential scan.
func merge(parts []best) best {
	out := best{index: noCandidate, norm: math.Inf(1)}
	for _, p := range parts {
		out.evaluated += p.evaluated
		out.stopped = out.stopped || p.stopped
		if p.index == noCandidate {
			continue
		}
		if out.index == noCandidate || p.norm < out.norm {
			out.index, out.norm = p.index, p.norm
		}
	}

	return out
}

// candidateBits expands index i into a P-bit MSB-first assignment.
func candidateBits(i int64, vars int) []uint8 {
	q := make([]uint8, vars)
	for p := 0; p < vars; p++ {
		q[p] = uint8((i >> uint(vars-1-p)) & 1)
	}

	return q
}

// CandidateBits returns the assignment Solve evaluates at enumeration index i
// for P = vars binary variables: the vars-bit, zero-padded, MSB-first binary
// representation of i.
func CandidateBits(i int64, vars int) []uint8 { return candidateBits(i, vars) }
