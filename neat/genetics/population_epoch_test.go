package genetics

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constantEvaluator scores every genome by its connection count plus one, so reproduction has a
// meaningful gradient to select on without depending on a real network evaluator.
type constantEvaluator struct{}

func (constantEvaluator) Evaluate(_ context.Context, g *Genome, _ *rand.Rand) (float64, error) {
	return float64(g.Len() + 1), nil
}

func testEpochConfig() EpochConfig {
	return EpochConfig{
		Speciator: Speciator{CompatThreshold: 3.0, ExcessCoeff: 1.0, DisjointCoeff: 1.0, WeightDiffCoeff: 0.4, LargeGenomeSize: 20},
		Sharer:    FitnessSharer{},
		Reproducer: Reproducer{
			Base: testBase(),
			Rates: ReproductionRates{
				LargeSpeciesSize:      100,
				CrossoverRate:         0.5,
				InterspeciesMateRate:  0.05,
				DisableConnectionRate: 0.75,
				Mutation:              MutationRates{PermutationRate: 0.1, RandomWeightRate: 0.05, NewConnectionRate: 0.05, SplitConnectionRate: 0.02},
			},
		},
		RunSeed: 7,
	}
}

func testPopulationWithGenomes() *Population {
	p := NewPopulation(testBase())
	p.Registry.ConnectionID(0, 2)
	p.Registry.ConnectionID(1, 3)
	p.Genomes = []*Genome{
		NewGenome(p.NextGenomeID(), []Direction{{0, 2}}, []float64{0.5}, []bool{true}),
		NewGenome(p.NextGenomeID(), []Direction{{1, 3}}, []float64{0.3}, []bool{true}),
		NewGenome(p.NextGenomeID(), []Direction{{0, 2}, {1, 3}}, []float64{0.2, 0.1}, []bool{true, true}),
	}
	return p
}

func TestSequentialPopulationEpochExecutor_NextEpoch(t *testing.T) {
	p := testPopulationWithGenomes()
	originalSize := p.Size()
	rng := rand.New(rand.NewSource(1))

	exec := SequentialPopulationEpochExecutor{}
	scores, err := exec.NextEpoch(context.Background(), 1, p, rng, constantEvaluator{}, testEpochConfig())

	require.NoError(t, err)
	assert.Len(t, scores, originalSize)
	assert.Equal(t, originalSize, p.Size(), "population size must be preserved across an epoch")
	require.NoError(t, p.Verify())
}

func TestParallelPopulationEpochExecutor_NextEpoch(t *testing.T) {
	p := testPopulationWithGenomes()
	originalSize := p.Size()
	rng := rand.New(rand.NewSource(1))

	exec := ParallelPopulationEpochExecutor{}
	scores, err := exec.NextEpoch(context.Background(), 1, p, rng, constantEvaluator{}, testEpochConfig())

	require.NoError(t, err)
	assert.Len(t, scores, originalSize)
	assert.Equal(t, originalSize, p.Size())
	require.NoError(t, p.Verify())
}

func TestSequentialPopulationEpochExecutor_honoursContextCancellation(t *testing.T) {
	p := testPopulationWithGenomes()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := SequentialPopulationEpochExecutor{}
	_, err := exec.NextEpoch(ctx, 1, p, rand.New(rand.NewSource(1)), constantEvaluator{}, testEpochConfig())
	assert.Error(t, err)
}
