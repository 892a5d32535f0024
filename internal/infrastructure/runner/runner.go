package runner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Runner struct {
	g   *errgroup.Group
	ctx context.Context
}

func New(ctx context.Context) *Runner {
	g, gctx := errgroup.WithContext(ctx)

	return &Runner{
		g:   g,
		ctx: gctx,
	}
}

func (r *Runner) Go(f func() error) {
	r.g.Go(f)
}

// Context is canceled once any goroutine started with Go returns an error.
func (r *Runner) Context() context.Context {
	return r.ctx
}

func (r *Runner) Wait() error {
	return r.g.Wait()
}
