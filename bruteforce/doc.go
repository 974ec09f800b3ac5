// Package bruteforce provides an exhaustive reference solver for binary
// least squares: min ‖A_d·q − b‖₂ over every binary q.
//
// WARNING: exponential cost. Solve evaluates all 2^P assignments of the P
// columns of A_d, each in O(R·P). There is no pruning and no branch-and-bound.
// It exists as a correctness oracle for small instances (P in the low
// twenties at most) against which QUBO formulations and annealer output are
// validated; it is not a scalable solver.
//
// Enumeration order and tie-break:
//
//	Candidate i ∈ [0, 2^P) is the P-bit, zero-padded, most-significant-bit-first
//	binary representation of i, so q[0] is the highest bit. Candidates are
//	compared with strict less-than on the residual norm; on equal norms the
//	lower index (earlier candidate) wins.
//
// Parallelism:
//
//	WithWorkers(n) splits [0, 2^P) into n contiguous chunks. Each worker keeps
//	a local best; the merge step walks chunks in index order and replaces the
//	incumbent only on a strictly smaller norm, so the result is identical to
//	the sequential scan. No locks are taken on the hot path.
//
// Budgets:
//
//	WithDeadline, context cancellation and WithMaxCandidates stop the scan
//	early. The best candidate seen so far is returned with Result.Partial set
//	and a warning is logged; the search is never truncated silently. If not a
//	single candidate was evaluated, Solve fails with ErrNoCandidate.
package bruteforce
