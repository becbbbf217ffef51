package experiment

import "github.com/pkg/errors"

// BitMatchEnv is a deterministic, one-step env: every episode presents the same fixed input
// pattern and rewards the evolved network for selecting the target action for it, analogous to
// how the XOR experiment exercises structural evolution without any environment dynamics.
type BitMatchEnv struct {
	// Pattern is the observation handed back by Reset.
	Pattern Obs
	// Target is the action index that earns the reward.
	Target int
	// Reward is paid out when Step is called with Target; any other action earns zero.
	Reward float64

	done bool
}

// NewBitMatchEnv creates a BitMatchEnv for the given fixed pattern/target/reward.
func NewBitMatchEnv(pattern Obs, target int, reward float64) *BitMatchEnv {
	return &BitMatchEnv{Pattern: pattern, Target: target, Reward: reward}
}

func (e *BitMatchEnv) Reset() (Obs, error) {
	e.done = false
	return e.Pattern, nil
}

func (e *BitMatchEnv) Step(action int) (Obs, float64, bool, error) {
	if e.done {
		return nil, 0, true, errors.New("bit_match_env: step called after episode ended")
	}
	e.done = true

	reward := 0.0
	if action == e.Target {
		reward = e.Reward
	}
	return e.Pattern, reward, true, nil
}

func (e *BitMatchEnv) Close() error { return nil }

// CounterEnv is a multi-step env that rewards the evolved network for reproducing a fixed target
// action sequence, one action per step, terminating after len(Targets) steps or MaxSteps,
// whichever comes first — a small stand-in for a sequential control task.
type CounterEnv struct {
	// Targets is the sequence of actions the network should reproduce, in order.
	Targets []int
	// Obs is the (constant) observation returned at every step; in a richer env this would
	// encode the current step index, but a fixed observation keeps the env deterministic and
	// simple enough to exercise the harness without a real simulator.
	Obs Obs
	// StepReward is paid out for each step whose action matches Targets[step].
	StepReward float64
	// MaxSteps caps the episode length even if Targets is longer.
	MaxSteps int

	step int
}

// NewCounterEnv creates a CounterEnv over the given target action sequence.
func NewCounterEnv(targets []int, obs Obs, stepReward float64, maxSteps int) *CounterEnv {
	return &CounterEnv{Targets: targets, Obs: obs, StepReward: stepReward, MaxSteps: maxSteps}
}

func (e *CounterEnv) Reset() (Obs, error) {
	e.step = 0
	return e.Obs, nil
}

func (e *CounterEnv) Step(action int) (Obs, float64, bool, error) {
	if e.step >= len(e.Targets) || e.step >= e.MaxSteps {
		return e.Obs, 0, true, errors.New("counter_env: step called after episode ended")
	}

	reward := 0.0
	if action == e.Targets[e.step] {
		reward = e.StepReward
	}
	e.step++

	done := e.step >= len(e.Targets) || e.step >= e.MaxSteps
	return e.Obs, reward, done, nil
}

func (e *CounterEnv) Close() error { return nil }
