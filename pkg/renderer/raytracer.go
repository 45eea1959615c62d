package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/lights"
	"github.com/df07/go-simple-raytracer/pkg/material"
	"github.com/df07/go-simple-raytracer/pkg/scene"
)

// Background is the color of pixels whose primary ray hits nothing
var Background = core.Vec3{X: 0, Y: 0, Z: 0}

// Config contains rendering configuration
type Config struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   32,
		NumWorkers: 0,
	}
}

// Raytracer renders a scene seen from a camera and lit by one point light.
// Scene, camera and light are read-only for the lifetime of the raytracer.
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	light  lights.Light
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. Dimensions are checked here, before any work begins.
func NewRaytracer(sc *scene.Scene, camera *Camera, light lights.Light, width, height int, config Config, logger core.Logger) (*Raytracer, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	if sc == nil || camera == nil || light == nil {
		return nil, fmt.Errorf("raytracer needs a scene, a camera and a light")
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  sc,
		camera: camera,
		light:  light,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}, nil
}

// Render traces one primary ray per pixel into a raster of width x height.
// Uses default config and no logging.
func Render(ctx context.Context, sc *scene.Scene, camera *Camera, light lights.Light, width, height int) (*Raster, error) {
	rt, err := NewRaytracer(sc, camera, light, width, height, DefaultConfig(), nil)
	if err != nil {
		return nil, err
	}
	raster, _, err := rt.Render(ctx)
	return raster, err
}

// RayColor returns the color seen along ray and whether it struck a surface
func (rt *Raytracer) RayColor(ray core.Ray) (core.Vec3, bool, error) {
	hit, isHit := rt.scene.Hit(ray)
	if !isHit {
		return Background, false, nil
	}

	surface := rt.scene.Sphere(hit.Index)
	color, err := material.Shade(ray.At(hit.T), surface, rt.light)
	if err != nil {
		return core.Vec3{}, true, fmt.Errorf("sphere %d: %w", hit.Index, err)
	}
	return color, true, nil
}

// PixelColor traces the primary ray through pixel (i, j)
func (rt *Raytracer) PixelColor(i, j int) (core.Vec3, bool, error) {
	ray, err := rt.camera.GetRay(i, j, rt.width, rt.height)
	if err != nil {
		return core.Vec3{}, false, err
	}
	color, hit, err := rt.RayColor(ray)
	if err != nil {
		return core.Vec3{}, hit, fmt.Errorf("pixel (%d, %d): %w", i, j, err)
	}
	return color, hit, nil
}

// Render renders every pixel. Any pixel error aborts the whole render and no raster is returned.
func (rt *Raytracer) Render(ctx context.Context) (*Raster, RenderStats, error) {
	startTime := time.Now()

	raster, err := NewRaster(rt.width, rt.height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize)
	workers := resolveWorkers(rt.config.NumWorkers, len(tiles))
	rt.logger.Printf("Rendering %dx%d: %d spheres, %d tiles, %d workers\n",
		rt.width, rt.height, rt.scene.Len(), len(tiles), workers)

	stats, err := rt.runTiles(ctx, tiles, raster, workers)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", err)
	}

	stats.Workers = workers
	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d of %d pixels hit)\n",
		stats.Duration, stats.HitPixels, stats.TotalPixels)

	return raster, stats, nil
}
