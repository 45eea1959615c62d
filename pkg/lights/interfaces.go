package lights

import "github.com/df07/go-simple-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light is a source the shader can evaluate direct illumination from
type Light interface {
	Type() LightType

	// Sample returns the unit direction FROM point TO the light and the distance to it
	Sample(point core.Vec3) (LightSample, error)
}

// LightSample contains the direction and distance from a shading point to a light
type LightSample struct {
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light
}
