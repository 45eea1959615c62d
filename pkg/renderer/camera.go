package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/scene"
)

// Camera maps pixel coordinates to primary rays through a film plane.
//
// The film is the plane z = Eye.Z - FocalDistance, centered on the eye's x and y.
// Film x/y are not scaled by depth, so pixels cover equal world-space squares on it.
type Camera struct {
	Eye           core.Vec3
	FocalDistance float64
	VFov          float64 // vertical field of view in radians
}

// NewCamera creates a camera, checking focal distance > 0 and vfov in (0, π)
func NewCamera(eye core.Vec3, focalDistance, vfovRadians float64) (*Camera, error) {
	if !(focalDistance > 0) || math.IsInf(focalDistance, 0) {
		return nil, fmt.Errorf("focal distance %g: %w", focalDistance, core.ErrInvalidCamera)
	}
	if !(vfovRadians > 0 && vfovRadians < math.Pi) {
		return nil, fmt.Errorf("vertical fov %g rad outside (0, π): %w", vfovRadians, core.ErrInvalidCamera)
	}
	return &Camera{
		Eye:           eye,
		FocalDistance: focalDistance,
		VFov:          vfovRadians,
	}, nil
}

// NewCameraDegrees is NewCamera with the field of view given in degrees
func NewCameraDegrees(eye core.Vec3, focalDistance, vfovDegrees float64) (*Camera, error) {
	return NewCamera(eye, focalDistance, vfovDegrees*math.Pi/180.0)
}

// NewCameraFromConfig creates the camera a scene preset recommends
func NewCameraFromConfig(config scene.CameraConfig) (*Camera, error) {
	return NewCameraDegrees(config.Eye, config.FocalDistance, config.VFovDegrees)
}

// FilmExtent returns the film height h = 2·d·tan(fov/2) and width w = h·nx/ny
func (c *Camera) FilmExtent(nx, ny int) (h, w float64) {
	h = 2.0 * c.FocalDistance * math.Tan(c.VFov/2.0)
	w = h * (float64(nx) / float64(ny))
	return h, w
}

// PixelScale returns the world-space size of one pixel on the film
func (c *Camera) PixelScale(nx, ny int) float64 {
	_, w := c.FilmExtent(nx, ny)
	return w / float64(nx)
}

// FilmPoint returns the world-space point on the film for pixel (i, j); j = 0 is the bottom row
func (c *Camera) FilmPoint(i, j, nx, ny int) core.Vec3 {
	s := c.PixelScale(nx, ny)
	x := (float64(i) - float64(nx)/2.0) * s
	y := (float64(j) - float64(ny)/2.0) * s
	return core.NewVec3(c.Eye.X+x, c.Eye.Y+y, c.Eye.Z-c.FocalDistance)
}

// GetRay generates the primary ray from the eye through pixel (i, j)
func (c *Camera) GetRay(i, j, nx, ny int) (core.Ray, error) {
	ray, err := core.NewRayTo(c.Eye, c.FilmPoint(i, j, nx, ny))
	if err != nil {
		return core.Ray{}, fmt.Errorf("pixel (%d, %d): %w", i, j, err)
	}
	return ray, nil
}
