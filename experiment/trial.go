package experiment

import "time"

// Trial aggregates every generation's statistics for a single evolutionary run (§4.12).
type Trial struct {
	// Id is the trial number within its experiment.
	Id int
	// Generations holds the per-generation summaries, in execution order.
	Generations Generations
	// Duration is the elapsed time the whole trial took.
	Duration time.Duration
}

// AvgEpochDuration returns the mean duration of this trial's generations, or EmptyDuration if
// there are none.
func (t *Trial) AvgEpochDuration() time.Duration {
	if len(t.Generations) == 0 {
		return EmptyDuration
	}
	total := time.Duration(0)
	for _, g := range t.Generations {
		total += g.Duration
	}
	return total / time.Duration(len(t.Generations))
}

// RecentEpochEvalTime returns the execution time of this trial's most recently evaluated
// generation.
func (t *Trial) RecentEpochEvalTime() time.Time {
	var u time.Time
	for _, g := range t.Generations {
		if u.Before(g.Executed) {
			u = g.Executed
		}
	}
	return u
}

// BestScore returns the best score seen in any generation of this trial.
func (t *Trial) BestScore() float64 {
	best := Floats{}
	for _, g := range t.Generations {
		best = append(best, g.BestScore())
	}
	return best.Max()
}

// MeanScores returns the mean population score for each generation in this trial.
func (t *Trial) MeanScores() Floats {
	means := make(Floats, len(t.Generations))
	for i, g := range t.Generations {
		means[i] = g.Scores.Mean()
	}
	return means
}

// BestScores returns the best population score for each generation in this trial.
func (t *Trial) BestScores() Floats {
	best := make(Floats, len(t.Generations))
	for i, g := range t.Generations {
		best[i] = g.BestScore()
	}
	return best
}

// Diversity returns the species count for each generation in this trial.
func (t *Trial) Diversity() Floats {
	d := make(Floats, len(t.Generations))
	for i, g := range t.Generations {
		d[i] = float64(g.Diversity)
	}
	return d
}

// Trials is a sortable collection of trials, ordered by most recent evaluation time then Id.
type Trials []Trial

func (ts Trials) Len() int      { return len(ts) }
func (ts Trials) Swap(i, j int) { ts[i], ts[j] = ts[j], ts[i] }
func (ts Trials) Less(i, j int) bool {
	ui, uj := ts[i].RecentEpochEvalTime(), ts[j].RecentEpochEvalTime()
	if ui.Equal(uj) {
		return ts[i].Id < ts[j].Id
	}
	return ui.Before(uj)
}
