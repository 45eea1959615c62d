package renderer

import (
	"context"
	"image"
)

// Tile is a rectangular block of raster cells rendered as one task
type Tile struct {
	ID     int
	Bounds image.Rectangle // in raster coordinates, Min.Y is the lowest row
}

// NewTileGrid splits a width x height raster into tiles of at most tileSize on a side
func NewTileGrid(width, height, tileSize int) []Tile {
	if tileSize <= 0 {
		tileSize = max(width, height)
	}

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	tiles := make([]Tile, 0, tilesX*tilesY)
	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, Tile{
				ID:     len(tiles),
				Bounds: image.Rect(x0, y0, x1, y1),
			})
		}
	}
	return tiles
}

// renderTile renders every pixel inside bounds into raster.
// Tiles never overlap, so concurrent calls on distinct tiles touch distinct cells.
func (rt *Raytracer) renderTile(ctx context.Context, tile Tile, raster *Raster) (RenderStats, error) {
	stats := RenderStats{Tiles: 1}

	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			color, hit, err := rt.PixelColor(i, j)
			if err != nil {
				return stats, err
			}
			raster.Set(i, j, color)

			stats.TotalPixels++
			if hit {
				stats.HitPixels++
			} else {
				stats.MissPixels++
			}
		}
	}
	return stats, nil
}
