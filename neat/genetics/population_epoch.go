package genetics

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/neatkit/neat/neat"
)

// GenomeEvaluator scores a single genome. Implementations (e.g. experiment.FitnessHarness) own
// whatever environment state is needed to run the genome's episodes; rng is the stochastic
// source this evaluation must draw from (§5).
type GenomeEvaluator interface {
	Evaluate(ctx context.Context, genome *Genome, rng *rand.Rand) (float64, error)
}

// EpochConfig groups the speciation/sharing/reproduction policy an epoch executor applies after
// evaluation. RunSeed is only consulted by ParallelPopulationEpochExecutor, to derive each
// worker's per-genome RNG deterministically (§5).
type EpochConfig struct {
	Speciator  Speciator
	Sharer     FitnessSharer
	Reproducer Reproducer
	RunSeed    int64
}

// PopulationEpochExecutor turns over a population to its next generation: evaluate every genome,
// speciate, share fitness, and reproduce. It returns the raw score of every genome in the
// population as it stood before reproduction, for the caller's own statistics collection.
type PopulationEpochExecutor interface {
	NextEpoch(ctx context.Context, generation int, pop *Population, rng *rand.Rand, evaluator GenomeEvaluator, cfg EpochConfig) ([]float64, error)
}

// SequentialPopulationEpochExecutor runs the full per-generation pipeline — evaluate, speciate,
// share, reproduce — in the calling goroutine. This is the only executor that guarantees the
// evaluation order itself is part of the deterministic replay contract of §5 and §8.
type SequentialPopulationEpochExecutor struct{}

func (SequentialPopulationEpochExecutor) NextEpoch(ctx context.Context, generation int, pop *Population, rng *rand.Rand, evaluator GenomeEvaluator, cfg EpochConfig) ([]float64, error) {
	scores, err := evaluateSequential(ctx, pop, rng, evaluator)
	if err != nil {
		return nil, err
	}
	if err := finishEpoch(pop, rng, scores, cfg); err != nil {
		return nil, err
	}
	neat.DebugLog(fmt.Sprintf("genetics: epoch %d complete, population size %d", generation, pop.Size()))
	return scores, nil
}

// ParallelPopulationEpochExecutor evaluates the population's genomes concurrently across a
// worker pool sized by runtime.GOMAXPROCS, then hands the resulting scores to the same
// speciate/share/reproduce pipeline as SequentialPopulationEpochExecutor so the innovation
// registry is never mutated by more than one goroutine at a time (§5).
type ParallelPopulationEpochExecutor struct{}

func (ParallelPopulationEpochExecutor) NextEpoch(ctx context.Context, generation int, pop *Population, rng *rand.Rand, evaluator GenomeEvaluator, cfg EpochConfig) ([]float64, error) {
	scores, err := evaluateParallel(ctx, pop, evaluator, cfg.RunSeed)
	if err != nil {
		return nil, err
	}
	if err := finishEpoch(pop, rng, scores, cfg); err != nil {
		return nil, err
	}
	neat.DebugLog(fmt.Sprintf("genetics: parallel epoch %d complete, population size %d", generation, pop.Size()))
	return scores, nil
}

func evaluateSequential(ctx context.Context, pop *Population, rng *rand.Rand, evaluator GenomeEvaluator) ([]float64, error) {
	scores := make([]float64, len(pop.Genomes))
	for i, g := range pop.Genomes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		score, err := evaluator.Evaluate(ctx, g, rng)
		if err != nil {
			return nil, err
		}
		scores[i] = score
	}
	return scores, nil
}

func evaluateParallel(ctx context.Context, pop *Population, evaluator GenomeEvaluator, runSeed int64) ([]float64, error) {
	n := len(pop.Genomes)
	scores := make([]float64, n)
	errs := make([]error, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				workerRNG := rand.New(rand.NewSource(runSeed*1000003 + int64(i)))
				score, err := evaluator.Evaluate(ctx, pop.Genomes[i], workerRNG)
				scores[i] = score
				errs[i] = err
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return scores, nil
}

// finishEpoch runs the shared speciate -> share -> reproduce sequence common to both executors.
func finishEpoch(pop *Population, rng *rand.Rand, scores []float64, cfg EpochConfig) error {
	speciesIDs, reps := cfg.Speciator.Speciate(pop.Genomes, pop.Reps, pop.Registry)
	pop.Reps = reps

	sharedProbs := cfg.Sharer.Normalise(scores, speciesIDs)
	if sharedProbs == nil {
		neat.WarnLog("genetics: all shared scores are zero, falling back to uniform sampling")
	}

	pop.Genomes = cfg.Reproducer.Reproduce(rng, pop.Genomes, scores, speciesIDs, sharedProbs, pop.Registry, pop.NextGenomeID)
	return pop.Verify()
}
