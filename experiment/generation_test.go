package experiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeneration_BestScore(t *testing.T) {
	g := Generation{Id: 1, Scores: Floats{1.0, 5.0, 3.0}}
	assert.Equal(t, 5.0, g.BestScore())
}

func TestGenerations_sortByExecutedThenId(t *testing.T) {
	now := time.Now()
	gs := Generations{
		{Id: 2, Executed: now},
		{Id: 1, Executed: now},
		{Id: 0, Executed: now.Add(-time.Hour)},
	}

	assert.True(t, gs.Less(2, 0))  // earlier timestamp sorts first
	assert.True(t, gs.Less(1, 0))  // same timestamp, lower Id sorts first
	assert.False(t, gs.Less(0, 1))
}
