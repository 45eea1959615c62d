package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray struck a surface
	MissPixels  int           // Pixels left at the background color
	Tiles       int           // Number of tiles rendered
	Workers     int           // Number of concurrent workers used
	Duration    time.Duration // Wall-clock render time
}

// Add accumulates the pixel and tile counts of other into s
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.MissPixels += other.MissPixels
	s.Tiles += other.Tiles
}

// HitRatio returns the fraction of pixels that struck a surface
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
