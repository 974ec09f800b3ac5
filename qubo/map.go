package qubo

import (
	"fmt"
	"sort"
)

// Key addresses one QUBO coefficient. Map keys always satisfy I >= J.
type Key struct {
	I, J int
}

// Map is the sparse QUBO coefficient mapping produced by Build.
//
// Absent keys mean zero: At returns 0 explicitly instead of relying on a
// default-valued container. A Map is immutable once returned; every
// accessor copies.
type Map struct {
	vars   int             // number of binary variables P
	scale  float64         // scale the coefficients were multiplied by
	offset float64         // scale·‖b‖², the constant dropped from the energy
	terms  map[Key]float64 // non-zero entries, I >= J
}

// Vars returns the number of binary variables P.
func (m Map) Vars() int { return m.vars }

// Scale returns the scale factor applied to every coefficient.
func (m Map) Scale() float64 { return m.scale }

// Offset returns scale·‖b‖², the constant dropped during the derivation.
// Without a diagonal shift, Energy(q) + Offset() == scale·‖A_d·q − b‖².
func (m Map) Offset() float64 { return m.offset }

// Len returns the number of stored (non-zero) coefficients.
func (m Map) Len() int { return len(m.terms) }

// At returns the coefficient coupling variables i and j, or 0 when absent.
// The argument order does not matter: At(k, j) == At(j, k).
func (m Map) At(i, j int) float64 {
	if i < j {
		i, j = j, i
	}

	return m.terms[Key{I: i, J: j}]
}

// Has reports whether (i, j) is stored, in either argument order.
func (m Map) Has(i, j int) bool {
	if i < j {
		i, j = j, i
	}
	_, ok := m.terms[Key{I: i, J: j}]

	return ok
}

// Keys returns the stored keys in row-major order (I asc, then J asc).
func (m Map) Keys() []Key {
	keys := make([]Key, 0, len(m.terms))
	for k := range m.terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].I != keys[b].I {
			return keys[a].I < keys[b].I
		}

		return keys[a].J < keys[b].J
	})

	return keys
}

// Terms returns a copy of the raw coefficient map.
func (m Map) Terms() map[Key]float64 {
	out := make(map[Key]float64, len(m.terms))
	for k, v := range m.terms {
		out[k] = v
	}

	return out
}

// Entries returns the coefficients as a sorted Problem (lower triangle, I >= J).
func (m Map) Entries() Problem {
	keys := m.Keys()
	p := make(Problem, len(keys))
	for n, k := range keys {
		p[n] = Entry{I: k.I, J: k.J, Value: m.terms[k]}
	}

	return p
}

// Upper returns the same coefficients transposed into the upper triangle
// (I <= J), sorted by I then J. The Map itself is unchanged.
func (m Map) Upper() Problem {
	p := m.Entries()
	for n := range p {
		p[n].I, p[n].J = p[n].J, p[n].I
	}
	p.sort()

	return p
}

// Energy evaluates Σ Q_ij·q_i·q_j over the stored coefficients.
// Errors: ErrDimensionMismatch (len(q) != Vars()), ErrNonBinary.
// Complexity: O(P + Len()).
func (m Map) Energy(q []uint8) (float64, error) {
	if len(q) != m.vars {
		return 0, fmt.Errorf("Energy: len(q)=%d, want %d: %w", len(q), m.vars, ErrDimensionMismatch)
	}
	for i, v := range q {
		if v > 1 {
			return 0, fmt.Errorf("Energy: q[%d]=%d: %w", i, v, ErrNonBinary)
		}
	}
	// Sum in key order so the result does not depend on map iteration.
	var e float64
	for _, k := range m.Keys() {
		if q[k.I] == 1 && q[k.J] == 1 {
			e += m.terms[k]
		}
	}

	return e, nil
}
