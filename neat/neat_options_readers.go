package neat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// LoadYAMLOptions loads NEAT options encoded as a YAML document.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var opts Options
	if err = yaml.Unmarshal(content, &opts); err != nil {
		return nil, errors.Wrap(err, "failed to decode NEAT options from YAML")
	}
	if err = InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err = opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return &opts, nil
}

// LoadPlainOptions loads NEAT options from the legacy "key value" per-line plain text format.
// Unknown keys are rejected so that a typo in a config file fails fast at startup rather than
// silently falling back to a zero value.
func LoadPlainOptions(r io.Reader) (*Options, error) {
	c := &Options{}
	var name string
	var param string
	for {
		_, err := fmt.Fscanf(r, "%s %v\n", &name, &param)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		switch name {
		case "compat_threshold":
			c.CompatThreshold = cast.ToFloat64(param)
		case "excess_coeff":
			c.ExcessCoeff = cast.ToFloat64(param)
		case "disjoint_coeff":
			c.DisjointCoeff = cast.ToFloat64(param)
		case "weight_diff_coeff":
			c.WeightDiffCoeff = cast.ToFloat64(param)
		case "large_genome_size":
			c.LargeGenomeSize = cast.ToInt(param)
		case "interspecies_mate_rate":
			c.InterspeciesMateRate = cast.ToFloat64(param)
		case "permutation_rate":
			c.PermutationRate = cast.ToFloat64(param)
		case "random_weight_rate":
			c.RandomWeightRate = cast.ToFloat64(param)
		case "new_connection_rate":
			c.NewConnectionRate = cast.ToFloat64(param)
		case "split_connection_rate":
			c.SplitConnectionRate = cast.ToFloat64(param)
		case "large_species_size":
			c.LargeSpeciesSize = cast.ToInt(param)
		case "crossover_rate":
			c.CrossoverRate = cast.ToFloat64(param)
		case "disable_connection_rate":
			c.DisableConnectionRate = cast.ToFloat64(param)
		case "max_steps":
			c.MaxSteps = cast.ToInt(param)
		case "episodes":
			c.Episodes = cast.ToInt(param)
		case "score_exponent":
			c.ScoreExponent = cast.ToFloat64(param)
		case "pop_size":
			c.PopSize = cast.ToInt(param)
		case "num_generations":
			c.NumGenerations = cast.ToInt(param)
		case "num_runs":
			c.NumRuns = cast.ToInt(param)
		case "rand_seed":
			c.RandSeed = cast.ToInt64(param)
		case "epoch_executor":
			c.EpochExecutorType = EpochExecutorType(param)
		case "log_level":
			c.LogLevel = param
		default:
			return nil, errors.Errorf("unknown configuration parameter found: %s = %s", name, param)
		}
	}
	if err := InitLogger(c.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadOptionsFromFile reads NEAT options from the given path, automatically resolving the file
// encoding from its extension (".yml"/".yaml" for YAML, anything else for the plain format).
func ReadOptionsFromFile(configFilePath string) (*Options, error) {
	configFile, err := os.Open(configFilePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer configFile.Close()

	if strings.HasSuffix(configFilePath, "yml") || strings.HasSuffix(configFilePath, "yaml") {
		return LoadYAMLOptions(configFile)
	}
	return LoadPlainOptions(configFile)
}
