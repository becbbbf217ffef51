package experiment

import "time"

// Generation captures the outcome of one generation's epoch: every genome's raw score, how many
// species the population split into, the best score seen, and how long the epoch took (§4.12).
type Generation struct {
	// Id identifies this generation within its trial.
	Id int
	// TrialId identifies the trial this generation belongs to.
	TrialId int
	// Executed is the wall-clock time the epoch finished.
	Executed time.Time
	// Duration is the elapsed time the epoch took to evaluate and reproduce.
	Duration time.Duration

	// Scores holds the raw score of every genome in the population, in population order,
	// as returned by the PopulationEpochExecutor before reproduction replaced the population.
	Scores Floats
	// Diversity is the number of species present at the end of this epoch.
	Diversity int
}

// BestScore returns the highest raw score in this generation.
func (g *Generation) BestScore() float64 {
	return g.Scores.Max()
}

// Generations is a sortable collection of generations, ordered by execution time and then Id.
type Generations []Generation

func (gs Generations) Len() int      { return len(gs) }
func (gs Generations) Swap(i, j int) { gs[i], gs[j] = gs[j], gs[i] }
func (gs Generations) Less(i, j int) bool {
	if gs[i].Executed.Equal(gs[j].Executed) {
		return gs[i].Id < gs[j].Id
	}
	return gs[i].Executed.Before(gs[j].Executed)
}
