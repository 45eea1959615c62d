package material

import (
	"fmt"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/geometry"
	"github.com/df07/go-simple-raytracer/pkg/lights"
)

// Shade evaluates the color of a surface at hitPoint lit by a single light.
// The result is per-channel in [0,1] for albedo in [0,1]; no shadow ray is cast.
func Shade(hitPoint core.Vec3, surface geometry.Sphere, light lights.Light) (core.Vec3, error) {
	switch surface.Material {
	case geometry.Diffuse:
		return lambert(hitPoint, surface, light)
	case geometry.Specular, geometry.Refractive:
		return core.Vec3{}, fmt.Errorf("shade %s surface: %w", surface.Material, core.ErrUnsupportedMaterial)
	default:
		return core.Vec3{}, fmt.Errorf("shade %s: %w", surface.Material, core.ErrUnsupportedMaterial)
	}
}

// LambertTerm returns max(0, n·l) for the surface normal at hitPoint and the direction to the light
func LambertTerm(hitPoint core.Vec3, surface geometry.Sphere, light lights.Light) (float64, error) {
	normal, err := surface.Normal(hitPoint)
	if err != nil {
		return 0, err
	}
	sample, err := light.Sample(hitPoint)
	if err != nil {
		return 0, err
	}
	return max(0, normal.Dot(sample.Direction)), nil
}

func lambert(hitPoint core.Vec3, surface geometry.Sphere, light lights.Light) (core.Vec3, error) {
	cosTheta, err := LambertTerm(hitPoint, surface, light)
	if err != nil {
		return core.Vec3{}, err
	}
	return surface.Albedo.Multiply(cosTheta), nil
}
