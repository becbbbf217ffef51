package experiment

import (
	"context"
	"math"
	"math/rand"

	"github.com/neatkit/neat/neat/genetics"
	"github.com/neatkit/neat/neat/network"
)

// FitnessHarness runs episodes of a genome against an Env and reduces the episode returns to a
// single score (§4.2). It implements genetics.GenomeEvaluator, so it can be handed directly to a
// PopulationEpochExecutor.
type FitnessHarness struct {
	// Base is the fixed input/output/bias node set shared by every evaluated genome.
	Base genetics.BaseNodes
	// NewEnv creates a fresh Env for a single episode; called once per episode so envs with
	// internal state never leak across genomes.
	NewEnv func() (Env, error)
	// MaxSteps bounds the number of interactions per episode.
	MaxSteps int
	// Episodes is the number of episodes averaged into one genome's score.
	Episodes int
	// ScoreExponent shapes the final score as score**ScoreExponent.
	ScoreExponent float64
}

// Evaluate runs Episodes episodes of genome against fresh envs and returns the mean episode
// return raised to ScoreExponent. A NaN result (from a degenerate env) is coerced to zero (§7).
func (h FitnessHarness) Evaluate(ctx context.Context, genome *genetics.Genome, rng *rand.Rand) (float64, error) {
	total := 0.0
	for e := 0; e < h.Episodes; e++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		ret, err := h.runEpisode(genome)
		if err != nil {
			return 0, err
		}
		total += ret
	}

	score := total / float64(h.Episodes)
	score = math.Pow(score, h.ScoreExponent)
	if math.IsNaN(score) {
		score = 0
	}
	return score, nil
}

func (h FitnessHarness) runEpisode(genome *genetics.Genome) (total float64, err error) {
	env, err := h.NewEnv()
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := env.Close(); closeErr != nil && err == nil {
			total, err = 0, closeErr
		}
	}()

	obs, err := env.Reset()
	if err != nil {
		return 0, err
	}

	for step := 0; step < h.MaxSteps; step++ {
		out := network.FeedForward(genome, h.Base, obs)
		action := network.Argmax(out)

		nextObs, reward, done, err := env.Step(action)
		if err != nil {
			return 0, err
		}
		total += reward
		obs = nextObs
		if done {
			break
		}
	}
	return total, nil
}
