package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/braunma/rackmap/pkg/models"
)

// LayoutAll lays out independent catalogs concurrently.
// Results are returned in the order of catalogs.
func LayoutAll(ctx context.Context, catalogs []*models.Catalog, opts Options) ([]*Result, error) {
	results := make([]*Result, len(catalogs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, catalog := range catalogs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Layout(catalog, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
