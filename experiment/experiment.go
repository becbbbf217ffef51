package experiment

import (
	"fmt"
	"io"
	"time"

	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/mat"
)

// Experiment is a collection of trials run over the same configuration, for statistical analysis
// across repeated runs of the evolutionary engine (§4.12).
type Experiment struct {
	Id       int
	Name     string
	RandSeed int64
	Trials
}

// AvgTrialDuration returns the mean duration of this experiment's trials.
func (e *Experiment) AvgTrialDuration() time.Duration {
	if len(e.Trials) == 0 {
		return EmptyDuration
	}
	total := time.Duration(0)
	for _, t := range e.Trials {
		total += t.Duration
	}
	return total / time.Duration(len(e.Trials))
}

// AvgGenerationsPerTrial returns the mean number of generations evaluated per trial.
func (e *Experiment) AvgGenerationsPerTrial() float64 {
	if len(e.Trials) == 0 {
		return 0
	}
	total := 0.0
	for _, t := range e.Trials {
		total += float64(len(t.Generations))
	}
	return total / float64(len(e.Trials))
}

// MostRecentTrialEvalTime returns the time of evaluation of the most recently evaluated trial.
func (e *Experiment) MostRecentTrialEvalTime() time.Time {
	var u time.Time
	for _, t := range e.Trials {
		if ut := t.RecentEpochEvalTime(); u.Before(ut) {
			u = ut
		}
	}
	return u
}

// BestScores returns the best score seen in each trial.
func (e *Experiment) BestScores() Floats {
	x := make(Floats, len(e.Trials))
	for i, t := range e.Trials {
		x[i] = t.BestScore()
	}
	return x
}

// WriteNPZ dumps the experiment's results to an NPZ file (§4.12):
//   - trials_best_scores: the best score achieved in each trial.
//   - trials_final_score_stats: mean, variance of the final generation's population scores, per trial.
//   - trial_<n>_mean_scores: the mean population score per generation, for trial n.
//   - trial_<n>_best_scores: the best population score per generation, for trial n.
//   - trial_<n>_diversity: the species count per generation, for trial n.
//
// This is purely an observability/export feature; it has no effect on the evolutionary sequence.
func (e *Experiment) WriteNPZ(w io.Writer) error {
	out := npz.NewWriter(w)

	if err := out.Write("trials_best_scores", e.BestScores()); err != nil {
		return err
	}

	finalStats := mat.NewDense(len(e.Trials), 2, nil) // mean, variance
	for i, t := range e.Trials {
		if len(t.Generations) == 0 {
			continue
		}
		mv := t.Generations[len(t.Generations)-1].Scores.MeanVariance()
		finalStats.SetRow(i, mv)
	}
	if err := out.Write("trials_final_score_stats", finalStats); err != nil {
		return err
	}

	for i, t := range e.Trials {
		if err := out.Write(fmt.Sprintf("trial_%d_mean_scores", i), t.MeanScores()); err != nil {
			return err
		}
		if err := out.Write(fmt.Sprintf("trial_%d_best_scores", i), t.BestScores()); err != nil {
			return err
		}
		if err := out.Write(fmt.Sprintf("trial_%d_diversity", i), t.Diversity()); err != nil {
			return err
		}
	}
	return out.Close()
}

// Experiments is a sortable collection of experiments, ordered by most recent trial evaluation
// time then Id.
type Experiments []Experiment

func (es Experiments) Len() int      { return len(es) }
func (es Experiments) Swap(i, j int) { es[i], es[j] = es[j], es[i] }
func (es Experiments) Less(i, j int) bool {
	ui, uj := es[i].MostRecentTrialEvalTime(), es[j].MostRecentTrialEvalTime()
	if ui.Equal(uj) {
		return es[i].Id < es[j].Id
	}
	return ui.Before(uj)
}
