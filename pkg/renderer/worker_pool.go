package renderer

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// resolveWorkers returns the worker count to use (0 or less = CPU count), never more than the task count
func resolveWorkers(requested, tasks int) int {
	workers := requested
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return max(1, min(workers, tasks))
}

// runTiles renders all tiles on a bounded group of goroutines.
// The first failing tile cancels the rest and its error is returned.
// Per-tile stats are written to their own slot and merged after the group finishes.
func (rt *Raytracer) runTiles(ctx context.Context, tiles []Tile, raster *Raster, workers int) (RenderStats, error) {
	results := make([]RenderStats, len(tiles))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for _, tile := range tiles {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			stats, err := rt.renderTile(groupCtx, tile, raster)
			if err != nil {
				return fmt.Errorf("tile %d %v: %w", tile.ID, tile.Bounds, err)
			}
			results[tile.ID] = stats
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return RenderStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return RenderStats{}, err
	}

	var total RenderStats
	for _, stats := range results {
		total.Add(stats)
	}
	return total, nil
}
