package match

import "revquiz/pkg/core"

// Exact accepts a reply whose normalized form is identical to the canonical
// answer. Always the first stage of the chain.
type Exact struct{}

func (Exact) Name() string { return string(core.MethodExact) }

func (Exact) TryMatch(canonical, reply string) (core.MatchResult, bool) {
	if canonical != reply {
		return core.MatchResult{}, false
	}
	return core.MatchResult{Verdict: true, Score: 1, Method: core.MethodExact}, true
}

// Engine runs the precedence-ordered matching pipeline against a question's
// accepted answer variants. It holds only read-only configuration, so a
// single Engine is safe for concurrent use.
type Engine struct {
	cfg   core.MatchConfig
	chain []core.Matcher
	sim   core.Similarity
}

// NewEngine validates the configuration and builds the matcher chain:
// exact, option token, numeric, containment, with fuzzy similarity as the
// final fallback across all variants.
func NewEngine(cfg core.MatchConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg: cfg,
		chain: []core.Matcher{
			Exact{},
			OptionToken{},
			Numeric{},
			Containment{MinLen: cfg.ContainmentMinLen},
		},
		sim: NewSimilarity(cfg.FuzzyBackend),
	}, nil
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() core.MatchConfig { return e.cfg }

// Backend names the similarity backend actually in use, after any fallback.
func (e *Engine) Backend() string { return e.sim.Name() }

// Match evaluates a raw reply against every accepted variant in listed
// order. The first structural match wins; otherwise the best fuzzy score
// across all variants decides against the threshold. An empty reply is
// always wrong, even against an empty canonical answer.
func (e *Engine) Match(reply string, question core.Question) core.MatchResult {
	replyNorm := Normalize(reply)
	if replyNorm == "" {
		return core.MatchResult{}
	}

	// Score starts below any real similarity so the first scorable variant
	// is always recorded, even at 0. Questions whose variants all normalize
	// empty leave it untouched and never reach the threshold comparison.
	best := core.MatchResult{Score: -1}
	for _, variant := range question.Answers {
		variantNorm := Normalize(variant)
		if variantNorm == "" {
			continue
		}

		for _, matcher := range e.chain {
			if result, ok := matcher.TryMatch(variantNorm, replyNorm); ok {
				result.MatchedVariant = variant
				return result
			}
		}

		if score := e.sim.Ratio(variantNorm, replyNorm); score > best.Score {
			best.Score = score
			best.MatchedVariant = variant
		}
	}

	if best.Score < 0 {
		return core.MatchResult{}
	}
	if best.Score >= e.cfg.FuzzyThreshold {
		best.Verdict = true
		best.Method = core.MethodFuzzy
		return best
	}
	// Keep the score for caller-side diagnostics, but claim no variant.
	return core.MatchResult{Score: best.Score}
}
