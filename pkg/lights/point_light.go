package lights

import (
	"fmt"

	"github.com/df07/go-simple-raytracer/pkg/core"
)

// PointLight is an infinitesimal light with no color or falloff
type PointLight struct {
	Position core.Vec3
}

// NewPointLight creates a point light at position
func NewPointLight(position core.Vec3) PointLight {
	return PointLight{Position: position}
}

func (pl PointLight) Type() LightType {
	return LightTypePoint
}

// Sample returns the direction toward the light.
// A shading point that coincides with the light has no direction.
func (pl PointLight) Sample(point core.Vec3) (LightSample, error) {
	toLight := pl.Position.Subtract(point)
	direction, err := toLight.Normalize()
	if err != nil {
		return LightSample{}, fmt.Errorf("light direction at %v: %w", point, err)
	}
	return LightSample{
		Direction: direction,
		Distance:  toLight.Length(),
	}, nil
}
