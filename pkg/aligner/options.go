package aligner

// Option configures an Aligner.
type Option func(*aligner)

// WithAPIExempt sets the attribute keys that are never flagged for being
// absent from the wire schema. Replaces the default set.
func WithAPIExempt(keys ...string) Option {
	return func(a *aligner) {
		a.apiExempt = toSet(keys)
	}
}

// WithCTExempt sets the attribute keys that are never flagged for being
// absent from the terminology table. Replaces the default set.
func WithCTExempt(keys ...string) Option {
	return func(a *aligner) {
		a.ctExempt = toSet(keys)
	}
}

func toSet(keys []string) map[string]bool {
	out := make(map[string]bool, len(keys))
	for _, k := range keys {
		out[k] = true
	}
	return out
}
