package core

import "fmt"

// MatchMethod identifies which stage of the matching pipeline accepted a reply.
type MatchMethod string

const (
	MethodExact       MatchMethod = "exact"
	MethodOptionToken MatchMethod = "option_token"
	MethodNumeric     MatchMethod = "numeric"
	MethodContainment MatchMethod = "containment"
	MethodFuzzy       MatchMethod = "fuzzy"
)

// MatchResult is the verdict for one reply against one question. Transient;
// consumed by the caller and never retained by the engine.
type MatchResult struct {
	Verdict        bool        `json:"verdict" yaml:"verdict"`
	MatchedVariant string      `json:"matched_variant,omitempty" yaml:"matched_variant,omitempty"`
	Score          float64     `json:"score" yaml:"score"`
	Method         MatchMethod `json:"method,omitempty" yaml:"method,omitempty"`
}

// Fuzzy backend names.
const (
	BackendBuiltin  = "builtin"
	BackendEnhanced = "enhanced"
)

// Tuning defaults.
const (
	DefaultFuzzyThreshold    = 0.88
	DefaultContainmentMinLen = 1
)

// MatchConfig tunes the matching pipeline. Set once at startup and treated
// as read-only afterwards.
type MatchConfig struct {
	// FuzzyThreshold is the minimum 0..1 similarity at which a near-miss
	// reply is still accepted.
	FuzzyThreshold float64 `json:"fuzzy_threshold" yaml:"fuzzy_threshold"`
	// ContainmentMinLen is the minimum canonical answer length, in runes,
	// for the containment check to apply.
	ContainmentMinLen int `json:"containment_min_len" yaml:"containment_min_len"`
	// FuzzyBackend selects the similarity implementation. Unknown names fall
	// back to the built-in backend.
	FuzzyBackend string `json:"fuzzy_backend" yaml:"fuzzy_backend"`
}

// DefaultMatchConfig returns the calibrated defaults.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		FuzzyThreshold:    DefaultFuzzyThreshold,
		ContainmentMinLen: DefaultContainmentMinLen,
		FuzzyBackend:      BackendBuiltin,
	}
}

func (c MatchConfig) Validate() error {
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("match config: fuzzy threshold %.3f outside [0,1]", c.FuzzyThreshold)
	}
	if c.ContainmentMinLen < 0 {
		return fmt.Errorf("match config: containment min length %d is negative", c.ContainmentMinLen)
	}
	return nil
}

// Matcher is one stage of the precedence chain. Both arguments are already
// normalized; a false second return means the stage has no opinion and the
// chain moves on.
type Matcher interface {
	Name() string
	TryMatch(canonical, reply string) (MatchResult, bool)
}

// Similarity scores two normalized strings on a 0..1 scale, 1 meaning
// identical. Implementations must be pure and safe for concurrent use.
type Similarity interface {
	Name() string
	Ratio(a, b string) float64
}
