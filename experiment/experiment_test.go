package experiment

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExperiment() *Experiment {
	return &Experiment{
		Id:       1,
		Name:     "sample",
		RandSeed: 42,
		Trials: Trials{
			{
				Id:       0,
				Duration: time.Second,
				Generations: Generations{
					{Id: 0, Scores: Floats{1.0, 2.0}, Diversity: 2},
					{Id: 1, Scores: Floats{2.0, 5.0}, Diversity: 1},
				},
			},
			{
				Id:       1,
				Duration: 3 * time.Second,
				Generations: Generations{
					{Id: 0, Scores: Floats{0.5, 1.0}, Diversity: 3},
				},
			},
		},
	}
}

func TestExperiment_AvgTrialDuration(t *testing.T) {
	e := sampleExperiment()
	assert.Equal(t, 2*time.Second, e.AvgTrialDuration())
}

func TestExperiment_AvgGenerationsPerTrial(t *testing.T) {
	e := sampleExperiment()
	assert.InDelta(t, 1.5, e.AvgGenerationsPerTrial(), 1e-9)
}

func TestExperiment_BestScores(t *testing.T) {
	e := sampleExperiment()
	assert.Equal(t, Floats{5.0, 1.0}, e.BestScores())
}

func TestExperiment_WriteNPZ(t *testing.T) {
	e := sampleExperiment()
	var buf bytes.Buffer
	err := e.WriteNPZ(&buf)
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}
