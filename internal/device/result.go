package device

// EffectType tags a non-textual instruction for the shell
type EffectType string

const (
	EffectClearScreen EffectType = "CLEAR_SCREEN"
)

// Effect carries no payload for now, new variants only add a type
type Effect struct {
	Type EffectType `json:"type"`
}

// Result is everything the engine says back after one command
type Result struct {
	OutputLines []string `json:"outputLines"`
	// Prompt to show for the next input
	Prompt  string   `json:"prompt"`
	Effects []Effect `json:"effects,omitempty"`
}

// HasEffect reports whether the result requests the given effect
func (r Result) HasEffect(t EffectType) bool {
	for _, e := range r.Effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

// reply builds a result with the prompt of the current (possibly new) state
func (d *Device) reply(lines ...string) Result {
	if lines == nil {
		lines = []string{}
	}
	return Result{OutputLines: lines, Prompt: d.Prompt()}
}
