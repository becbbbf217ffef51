// Package experiment runs trials of the evolutionary engine against an Env, collects per
// generation statistics, and exports them for later analysis.
package experiment

import (
	"context"
	"time"

	"github.com/neatkit/neat/neat"
	"github.com/neatkit/neat/neat/genetics"
	"github.com/pkg/errors"
)

// EmptyDuration is returned where an average duration cannot be estimated, e.g. an empty trial.
const EmptyDuration = time.Duration(-1)

// epochExecutorForContext resolves the PopulationEpochExecutor named by the options carried in
// ctx.
func epochExecutorForContext(ctx context.Context) (genetics.PopulationEpochExecutor, error) {
	options, ok := neat.FromContext(ctx)
	if !ok {
		return nil, neat.ErrNEATOptionsNotFound
	}
	switch options.EpochExecutorType {
	case neat.EpochExecutorTypeSequential:
		return genetics.SequentialPopulationEpochExecutor{}, nil
	case neat.EpochExecutorTypeParallel:
		return genetics.ParallelPopulationEpochExecutor{}, nil
	default:
		return nil, errors.Errorf("unsupported epoch executor type requested: %s", options.EpochExecutorType)
	}
}
