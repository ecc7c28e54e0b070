package watcher

// pendingBatch accumulates the distinct changed paths of one debounce
// window. It is discarded after each emission and never persisted.
type pendingBatch struct {
	seen  map[string]struct{}
	paths []string
}

func newPendingBatch() *pendingBatch {
	return &pendingBatch{seen: make(map[string]struct{})}
}

func (b *pendingBatch) add(path string) {
	if _, ok := b.seen[path]; ok {
		return
	}
	b.seen[path] = struct{}{}
	b.paths = append(b.paths, path)
}

func (b *pendingBatch) empty() bool {
	return len(b.paths) == 0
}

// take returns the accumulated paths in arrival order.
func (b *pendingBatch) take() []string {
	return b.paths
}
