package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitMatchEnv_rewardsTargetAction(t *testing.T) {
	env := NewBitMatchEnv(Obs{1, 0}, 1, 10.0)

	obs, err := env.Reset()
	require.NoError(t, err)
	assert.Equal(t, Obs{1, 0}, obs)

	_, reward, done, err := env.Step(1)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 10.0, reward)
}

func TestBitMatchEnv_otherActionEarnsNothing(t *testing.T) {
	env := NewBitMatchEnv(Obs{1, 0}, 1, 10.0)
	_, _ = env.Reset()

	_, reward, done, err := env.Step(0)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 0.0, reward)
}

func TestBitMatchEnv_stepAfterDoneErrors(t *testing.T) {
	env := NewBitMatchEnv(Obs{1}, 0, 1.0)
	_, _ = env.Reset()
	_, _, _, _ = env.Step(0)

	_, _, _, err := env.Step(0)
	assert.Error(t, err)
}

func TestCounterEnv_rewardsMatchingSequence(t *testing.T) {
	env := NewCounterEnv([]int{0, 1, 0}, Obs{0}, 1.0, 10)
	_, _ = env.Reset()

	total := 0.0
	actions := []int{0, 1, 1}
	var done bool
	for _, a := range actions {
		_, reward, d, err := env.Step(a)
		require.NoError(t, err)
		total += reward
		done = d
		if done {
			break
		}
	}
	assert.True(t, done)
	assert.Equal(t, 2.0, total) // first two actions match, third does not
}

func TestCounterEnv_doneAtMaxSteps(t *testing.T) {
	env := NewCounterEnv([]int{0, 0, 0, 0, 0}, Obs{0}, 1.0, 2)
	_, _ = env.Reset()

	_, _, done1, err := env.Step(0)
	require.NoError(t, err)
	assert.False(t, done1)

	_, _, done2, err := env.Step(0)
	require.NoError(t, err)
	assert.True(t, done2, "episode must end at max_steps even though targets remain")
}
