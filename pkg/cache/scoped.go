package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Several deployments sharing one Redis or MongoDB instance use distinct
// prefixes so their entries never collide.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "mps:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SolutionKey generates a prefixed key for solve results.
func (k *ScopedKeyer) SolutionKey(inputHash string, opts SolutionKeyOpts) string {
	return k.prefix + k.inner.SolutionKey(inputHash, opts)
}

// RenderKey generates a prefixed key for rendered diagrams.
func (k *ScopedKeyer) RenderKey(inputHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(inputHash, opts)
}
