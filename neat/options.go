package neat

import (
	"github.com/pkg/errors"
	"math"
)

// Options is the single configuration struct threaded through every component of the engine.
// It is loaded once at startup by LoadYAMLOptions or LoadPlainOptions and then passed around
// via a context.Context (see NewContext/FromContext) so that no component reaches for ambient
// global configuration.
type Options struct {
	// Genetic distance / speciation parameters (§4.4, §4.9).
	CompatThreshold      float64 `yaml:"compat_threshold"`
	ExcessCoeff          float64 `yaml:"excess_coeff"`
	DisjointCoeff        float64 `yaml:"disjoint_coeff"`
	WeightDiffCoeff      float64 `yaml:"weight_diff_coeff"`
	LargeGenomeSize      int     `yaml:"large_genome_size"`
	InterspeciesMateRate float64 `yaml:"interspecies_mate_rate"`

	// Mutation parameters (§4.8, §4.9).
	PermutationRate     float64 `yaml:"permutation_rate"`
	RandomWeightRate    float64 `yaml:"random_weight_rate"`
	NewConnectionRate   float64 `yaml:"new_connection_rate"`
	SplitConnectionRate float64 `yaml:"split_connection_rate"`
	LargeSpeciesSize    int     `yaml:"large_species_size"`

	// Crossover parameters (§4.7, §4.9).
	CrossoverRate         float64 `yaml:"crossover_rate"`
	DisableConnectionRate float64 `yaml:"disable_connection_rate"`

	// Fitness harness parameters (§4.2, §4.9).
	MaxSteps      int     `yaml:"max_steps"`
	Episodes      int     `yaml:"episodes"`
	ScoreExponent float64 `yaml:"score_exponent"`

	// Ambient run parameters.
	PopSize           int               `yaml:"pop_size"`
	NumGenerations    int               `yaml:"num_generations"`
	NumRuns           int               `yaml:"num_runs"`
	LogLevel          string            `yaml:"log_level"`
	RandSeed          int64             `yaml:"rand_seed"`
	EpochExecutorType EpochExecutorType `yaml:"epoch_executor"`
}

// Validate checks that every option required by the engine is present and finite. A
// configuration error here is fatal at startup (§7) - callers should treat a non-nil error
// as unrecoverable and abort before spawning a population.
func (o *Options) Validate() error {
	if o.PopSize <= 0 {
		return errors.New("pop_size must be a positive integer")
	}
	if o.CompatThreshold <= 0 {
		return errors.New("compat_threshold must be positive")
	}
	if o.LargeGenomeSize <= 0 {
		return errors.New("large_genome_size must be a positive integer")
	}
	if o.LargeSpeciesSize <= 0 {
		return errors.New("large_species_size must be a positive integer")
	}
	if o.MaxSteps <= 0 {
		return errors.New("max_steps must be a positive integer")
	}
	if o.Episodes <= 0 {
		return errors.New("episodes must be a positive integer")
	}
	if o.ScoreExponent == 0 {
		o.ScoreExponent = 1
	}
	for name, v := range map[string]float64{
		"excess_coeff":            o.ExcessCoeff,
		"disjoint_coeff":          o.DisjointCoeff,
		"weight_diff_coeff":       o.WeightDiffCoeff,
		"interspecies_mate_rate":  o.InterspeciesMateRate,
		"permutation_rate":        o.PermutationRate,
		"random_weight_rate":      o.RandomWeightRate,
		"new_connection_rate":     o.NewConnectionRate,
		"split_connection_rate":   o.SplitConnectionRate,
		"crossover_rate":          o.CrossoverRate,
		"disable_connection_rate": o.DisableConnectionRate,
		"score_exponent":          o.ScoreExponent,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("option %s must be a finite number, got %v", name, v)
		}
	}
	if o.EpochExecutorType == "" {
		o.EpochExecutorType = EpochExecutorTypeSequential
	}
	if o.LogLevel == "" {
		o.LogLevel = string(LogLevelInfo)
	}
	return nil
}
