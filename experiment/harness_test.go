package experiment

import (
	"context"
	"math/rand"
	"testing"

	"github.com/neatkit/neat/neat/genetics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitnessHarness_Evaluate_bitMatch(t *testing.T) {
	base := genetics.BaseNodes{Inputs: []int{0, 1}, Outputs: []int{2, 3}, Bias: 4}
	// A genome strongly biased toward output 1 (index 1, node 3).
	genome := genetics.NewGenome(1,
		[]genetics.Direction{{4, 3}},
		[]float64{5.0},
		[]bool{true},
	)

	h := FitnessHarness{
		Base:          base,
		NewEnv:        func() (Env, error) { return NewBitMatchEnv(Obs{1, 0}, 1, 1.0), nil },
		MaxSteps:      1,
		Episodes:      3,
		ScoreExponent: 1,
	}

	score, err := h.Evaluate(context.Background(), genome, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, score, "every episode should pick the strongly biased output and earn full reward")
}

func TestFitnessHarness_Evaluate_scoreExponent(t *testing.T) {
	base := genetics.BaseNodes{Inputs: []int{0}, Outputs: []int{1}, Bias: 2}
	genome := genetics.NewGenome(1, nil, nil, nil)

	h := FitnessHarness{
		Base:          base,
		NewEnv:        func() (Env, error) { return NewCounterEnv([]int{0}, Obs{0}, 4.0, 1), nil },
		MaxSteps:      1,
		Episodes:      1,
		ScoreExponent: 0.5,
	}

	score, err := h.Evaluate(context.Background(), genome, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, score, 1e-9) // 4**0.5
}

func TestFitnessHarness_Evaluate_contextCancellation(t *testing.T) {
	base := genetics.BaseNodes{Inputs: []int{0}, Outputs: []int{1}, Bias: 2}
	genome := genetics.NewGenome(1, nil, nil, nil)

	h := FitnessHarness{
		Base:          base,
		NewEnv:        func() (Env, error) { return NewCounterEnv([]int{0}, Obs{0}, 1.0, 1), nil },
		MaxSteps:      1,
		Episodes:      5,
		ScoreExponent: 1,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Evaluate(ctx, genome, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}
