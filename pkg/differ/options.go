package differ

// Option is a functional option for configuring Differ.
type Option func(*differ)

// WithIgnoredClasses excludes classes from the comparison on both sides.
func WithIgnoredClasses(classes ...string) Option {
	return func(d *differ) {
		for _, class := range classes {
			d.ignoreClasses[class] = true
		}
	}
}

// WithIgnoredAttributes excludes attribute names from the comparison in every class.
func WithIgnoredAttributes(attributes ...string) Option {
	return func(d *differ) {
		for _, attr := range attributes {
			d.ignoreAttributes[attr] = true
		}
	}
}

// WithInherited controls whether inherited attributes take part in the comparison.
func WithInherited(enabled bool) Option {
	return func(d *differ) {
		d.includeInherited = enabled
	}
}
