package qubo

import "sort"

// Entry is one QUBO coefficient in list form: linear when I == J, pairwise otherwise.
type Entry struct {
	I, J  int
	Value float64
}

// Problem is a flat list of QUBO coefficients, the layout annealing SDKs
// accept. Problems returned by Map are sorted by I then J.
type Problem []Entry

// sort orders p by I then J in place.
func (p Problem) sort() {
	sort.Slice(p, func(a, b int) bool {
		if p[a].I != p[b].I {
			return p[a].I < p[b].I
		}

		return p[a].J < p[b].J
	})
}

// Linear returns only the diagonal entries (I == J).
func (p Problem) Linear() Problem {
	out := make(Problem, 0, len(p))
	for _, e := range p {
		if e.I == e.J {
			out = append(out, e)
		}
	}

	return out
}

// Quadratic returns only the pairwise entries (I != J).
func (p Problem) Quadratic() Problem {
	out := make(Problem, 0, len(p))
	for _, e := range p {
		if e.I != e.J {
			out = append(out, e)
		}
	}

	return out
}
