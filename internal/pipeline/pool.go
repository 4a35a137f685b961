package pipeline

import "context"

// pool bounds how many blocking external calls run at once.
type pool struct {
	ch chan struct{}
}

func newPool(capacity int) *pool {
	if capacity <= 0 {
		capacity = 2
	}
	return &pool{
		ch: make(chan struct{}, capacity),
	}
}

// run waits for a free slot, then calls fn. It gives up only if ctx ends
// before a slot frees up; fn itself is never interrupted.
func (p *pool) run(ctx context.Context, fn func() error) error {
	select {
	case p.ch <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.ch }()

	return fn()
}
