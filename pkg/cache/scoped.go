package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The
// preview server uses it to keep per-project caches separate when
// several scene collections share one backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends the prefix to every
// generated key. A nil inner keyer defaults to [NewDefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SceneKey generates a prefixed key for scene document caching.
func (k *ScopedKeyer) SceneKey(id string) string {
	return k.prefix + k.inner.SceneKey(id)
}

// FrameKey generates a prefixed key for rendered frame caching.
func (k *ScopedKeyer) FrameKey(sceneHash string, opts FrameKeyOpts) string {
	return k.prefix + k.inner.FrameKey(sceneHash, opts)
}

// DiagramKey generates a prefixed key for diagram caching.
func (k *ScopedKeyer) DiagramKey(sceneHash string, opts DiagramKeyOpts) string {
	return k.prefix + k.inner.DiagramKey(sceneHash, opts)
}
