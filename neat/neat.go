// Package neat carries the process-wide configuration and logging facilities shared by every
// component of the evolutionary engine: the genome, the evaluator, the speciator, and the
// reproducer all read their tunables from an Options value obtained through this package.
package neat

// EpochExecutorType selects which PopulationEpochExecutor implementation drives a generation.
type EpochExecutorType string

const (
	// EpochExecutorTypeSequential runs evaluation, speciation, and reproduction in a single goroutine.
	EpochExecutorTypeSequential EpochExecutorType = "sequential"
	// EpochExecutorTypeParallel runs genome evaluation across a worker pool, then reproduces sequentially.
	EpochExecutorTypeParallel EpochExecutorType = "parallel"
)
