// Package gauss: solver options and defaults.
package gauss

// DefaultPivotTolerance is the magnitude below which a candidate pivot is
// treated as numerically zero, flagging the system as singular or too
// ill-conditioned for a fixed-tolerance direct method.
const DefaultPivotTolerance = 1e-10

// Options configures the elimination solver.
//
// Fields:
//   - PivotTolerance — strictly positive singularity threshold. A selected
//     pivot with |pivot| < PivotTolerance aborts the solve with ErrSingular.
//   - PreserveMatrix — when true, Solve clones A internally and leaves the
//     caller's matrix untouched. The right-hand side is always consumed:
//     on success it holds the solution x.
//
// The zero Options value is invalid (zero tolerance); start from
// DefaultOptions and override fields as needed:
//
//	opts := gauss.DefaultOptions()
//	opts.PivotTolerance = 1e-12
//	opts.PreserveMatrix = true
//	err := gauss.Solve(a, b, &opts)
type Options struct {
	PivotTolerance float64
	PreserveMatrix bool
}

// DefaultOptions returns the canonical solver configuration: the reference
// pivot tolerance and destructive (zero-copy) in-place operation.
func DefaultOptions() Options {
	return Options{
		PivotTolerance: DefaultPivotTolerance,
		PreserveMatrix: false,
	}
}
