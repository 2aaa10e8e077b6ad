package mutating

import (
	"strconv"

	"mutalife/internal/core"
)

const paramInterval = "mutation_interval"

// Parameters reports the values shown on the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	history := strconv.Itoa(e.history.Len())
	if limit := e.history.Limit(); limit > 0 {
		history += "/" + strconv.Itoa(limit)
	}
	ruleParams := []core.Parameter{
		core.TextParam("rules", "Rules", e.RulesString()),
		core.TextParam("history", "History", history),
	}
	if e.history.Limit() > 0 {
		ruleParams = append(ruleParams, core.IntParam("history_evicted", "Evicted", e.history.Dropped()))
	}
	size := e.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.BoolParam("running", "Running", e.running),
				core.IntParam("generation", "Generation", e.generation),
				core.IntParam("population", "Population", e.Population()),
				core.TextParam("grid", "Grid", strconv.Itoa(size.W)+"x"+strconv.Itoa(size.H)),
			},
		},
		{
			Name:   "Rules",
			Params: ruleParams,
		},
		{
			Name: "Mutation",
			Params: []core.Parameter{
				core.IntParam(paramInterval, "Mutation every", e.interval),
				core.IntParam("countdown", "Next mutation in", e.Countdown()),
			},
		},
	}}
}

// ParameterControls exposes the mutation interval with a floor but no
// ceiling.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    paramInterval,
		Label:  "Mutation every",
		Step:   e.cfg.IntervalStep,
		Min:    max(e.cfg.MinInterval, 1),
		HasMin: true,
	}}
}

// SetIntParameter applies a HUD adjustment through the same policy as
// IncreaseInterval and DecreaseInterval.
func (e *Engine) SetIntParameter(key string, value int) bool {
	if key != paramInterval {
		return false
	}
	if value < max(e.cfg.MinInterval, 1) {
		return false
	}
	e.SetMutationInterval(value)
	return e.interval == value
}

var (
	_ core.Sim                       = (*Engine)(nil)
	_ core.EventSource               = (*Engine)(nil)
	_ core.ParametersProvider        = (*Engine)(nil)
	_ core.ParameterControlsProvider = (*Engine)(nil)
	_ core.IntParameterSetter        = (*Engine)(nil)
)
