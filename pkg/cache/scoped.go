package cache

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by release
// version so a new renderer never serves images drawn by an old one.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.Version+":")
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

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(position string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(position, opts)
}

// LayoutKey generates a prefixed layout key.
func (k *ScopedKeyer) LayoutKey(position string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(position, opts)
}
