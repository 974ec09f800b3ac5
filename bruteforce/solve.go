package bruteforce

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/binlsq/fixedpoint"
	"github.com/katalvlaran/binlsq/matrix"
)

const opSolve = "Solve"

// Solve finds the binary q minimizing ‖ad·q − b‖₂ by evaluating every
// candidate, and decodes it with bv. See the package documentation for the
// enumeration order, tie-break and cost.
//
// Contracts:
//   - ad non-nil; b.Len() == ad.Rows().
//   - bv non-empty; ad.Cols() is a multiple of bv.Len().
//   - ad.Cols() <= Options.MaxBits.
//
// Errors: ErrNilInput, ErrDimensionMismatch, fixedpoint.ErrEmptyBitValue,
// ErrTooManyBits, ErrInvalidOptions, ErrNoCandidate (invariant violation).
//
// Complexity: Time O(2^P · R·P), Space O(R·P + workers·R).
func Solve(ctx context.Context, ad *matrix.Dense, b matrix.Vector, bv fixedpoint.BitValue, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err = validateInputs(ad, b, bv, o.MaxBits); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	rows, vars := ad.Shape()
	total := int64(1) << uint(vars)
	limit := total
	if o.MaxCandidates > 0 && o.MaxCandidates < total {
		limit = o.MaxCandidates
	}
	workers := o.Workers
	if int64(workers) > limit {
		workers = int(limit)
	}

	if o.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Deadline)
		defer cancel()
	}

	log := o.Logger.With().Str("op", opSolve).Int("vars", vars).Int("rows", rows).Logger()
	log.Debug().
		Int64("candidates", limit).
		Int("workers", workers).
		Msg("exhaustive search started")

	start := time.Now()
	e := newEngine(ad.RawCopy(), rows, vars, b.Values())
	var found best
	if workers <= 1 {
		found = e.scan(ctx, 0, limit)
	} else {
		found = scanParallel(ctx, e, limit, workers)
	}
	elapsed := time.Since(start)

	// Invariant: a full scan always evaluates candidate 0.
	if found.index == noCandidate {
		o.Metrics.observe(outcomeFailed, found.evaluated, elapsed)
		if cerr := ctx.Err(); cerr != nil {
			return Result{}, fmt.Errorf("%s: %w: %w", opSolve, ErrNoCandidate, cerr)
		}

		return Result{}, fmt.Errorf("%s: %w", opSolve, ErrNoCandidate)
	}

	q := candidateBits(found.index, vars)
	x, err := fixedpoint.Decode(q, bv)
	if err != nil {
		o.Metrics.observe(outcomeFailed, found.evaluated, elapsed)
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	res := Result{
		Q:         q,
		X:         x,
		MinNorm:   found.norm,
		Index:     found.index,
		Evaluated: found.evaluated,
		Total:     total,
		Partial:   found.evaluated < total,
	}

	if res.Partial {
		o.Metrics.observe(outcomePartial, res.Evaluated, elapsed)
		log.Warn().
			Int64("evaluated", res.Evaluated).
			Int64("total", total).
			Bool("cancelled", found.stopped).
			Float64("min_norm", res.MinNorm).
			Dur("elapsed", elapsed).
			Msg("exhaustive search stopped early; result is the best of a partial scan")

		return res, nil
	}

	o.Metrics.observe(outcomeComplete, res.Evaluated, elapsed)
	log.Debug().
		Int64("index", res.Index).
		Float64("min_norm", res.MinNorm).
		Dur("elapsed", elapsed).
		Msg("exhaustive search finished")

	return res, nil
}

// scanParallel splits [0, limit) into contiguous chunks, scans them
// concurrently and merges the chunk results in index order.
func scanParallel(ctx context.Context, e *engine, limit int64, workers int) best {
	parts := make([]best, workers)
	chunk := (limit + int64(workers) - 1) / int64(workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		w := w
		lo := int64(w) * chunk
		hi := min(lo+chunk, limit)
		if lo >= hi {
			parts[w] = best{index: noCandidate}
			continue
		}
		g.Go(func() error {
			parts[w] = e.scan(ctx, lo, hi)
			return nil
		})
	}
	// Workers never return errors; Wait is a barrier.
	_ = g.Wait()

	return merge(parts)
}

// validateInputs applies the shape contracts before any exponential work.
func validateInputs(ad *matrix.Dense, b matrix.Vector, bv fixedpoint.BitValue, maxBits int) error {
	if ad == nil {
		return ErrNilInput
	}
	if b.Len() != ad.Rows() {
		return fmt.Errorf("rows=%d, len(b)=%d: %w", ad.Rows(), b.Len(), ErrDimensionMismatch)
	}
	if bv.Len() == 0 {
		return fixedpoint.ErrEmptyBitValue
	}
	if ad.Cols()%bv.Len() != 0 {
		return fmt.Errorf("cols=%d, bits=%d: %w", ad.Cols(), bv.Len(), ErrDimensionMismatch)
	}
	if ad.Cols() > maxBits {
		return fmt.Errorf("P=%d, limit=%d: %w", ad.Cols(), maxBits, ErrTooManyBits)
	}

	return nil
}
