package scene

import (
	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/geometry"
	"github.com/df07/go-simple-raytracer/pkg/lights"
)

// CameraConfig holds the camera parameters a preset recommends
type CameraConfig struct {
	Eye           core.Vec3
	FocalDistance float64
	VFovDegrees   float64
}

// Preset bundles a scene with the camera and light it is meant to be rendered with
type Preset struct {
	Scene        *Scene
	CameraConfig CameraConfig
	Light        lights.PointLight
}

// Reference scene parameters
var (
	ReferenceEye = core.NewVec3(0, 0, 200)
)

const (
	ReferenceFocalDistance = 200.0
	ReferenceVFovDegrees   = 120.0
)

// NewReferenceScene creates three large grey spheres below the eye at z = -1200
func NewReferenceScene() *Preset {
	spheres := []geometry.Sphere{
		{Radius: 200, Center: core.NewVec3(0, -300, -1200), Albedo: core.NewVec3(.8, .8, .8), Material: geometry.Diffuse},
		{Radius: 200, Center: core.NewVec3(-80, -150, -1200), Albedo: core.NewVec3(.7, .7, .7), Material: geometry.Diffuse},
		{Radius: 200, Center: core.NewVec3(70, -100, -1200), Albedo: core.NewVec3(.9, .9, .9), Material: geometry.Diffuse},
	}

	return &Preset{
		Scene: mustNew(spheres...),
		CameraConfig: CameraConfig{
			Eye:           ReferenceEye,
			FocalDistance: ReferenceFocalDistance,
			VFovDegrees:   ReferenceVFovDegrees,
		},
		Light: lights.NewPointLight(ReferenceEye), // collocated with the eye
	}
}

// NewSingleSphereScene creates a unit sphere straight ahead of a camera at the origin
func NewSingleSphereScene() *Preset {
	sphere := geometry.Sphere{
		Radius:   1,
		Center:   core.NewVec3(0, 0, -5),
		Albedo:   core.NewVec3(1, 1, 1),
		Material: geometry.Diffuse,
	}

	return &Preset{
		Scene: mustNew(sphere),
		CameraConfig: CameraConfig{
			Eye:           core.NewVec3(0, 0, 0),
			FocalDistance: 1,
			VFovDegrees:   90,
		},
		Light: lights.NewPointLight(core.NewVec3(0, 0, 0)),
	}
}

// NewEmptyScene creates a scene with nothing in it, useful for checking the background
func NewEmptyScene() *Preset {
	return &Preset{
		Scene: mustNew(),
		CameraConfig: CameraConfig{
			Eye:           ReferenceEye,
			FocalDistance: ReferenceFocalDistance,
			VFovDegrees:   ReferenceVFovDegrees,
		},
		Light: lights.NewPointLight(ReferenceEye),
	}
}

// mustNew is only used for the hardcoded presets above
func mustNew(spheres ...geometry.Sphere) *Scene {
	s, err := New(spheres...)
	if err != nil {
		panic(err)
	}
	return s
}
