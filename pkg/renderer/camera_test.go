package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/scene"
)

func TestNewCamera_Validation(t *testing.T) {
	tests := []struct {
		name   string
		focal  float64
		vfov   float64
		expect bool
	}{
		{"valid", 200, math.Pi / 2, true},
		{"zero focal", 0, math.Pi / 2, false},
		{"negative focal", -1, math.Pi / 2, false},
		{"zero fov", 1, 0, false},
		{"fov of pi", 1, math.Pi, false},
		{"NaN fov", 1, math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCamera(core.Vec3{}, tt.focal, tt.vfov)
			if tt.expect && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tt.expect && !errors.Is(err, core.ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
		})
	}
}

func TestCamera_FilmExtent(t *testing.T) {
	camera, err := NewCameraDegrees(core.Vec3{}, 200, 120)
	if err != nil {
		t.Fatalf("NewCameraDegrees: %v", err)
	}

	h, w := camera.FilmExtent(400, 200)
	expectedH := 2 * 200 * math.Tan(math.Pi/3)
	if math.Abs(h-expectedH) > 1e-9 {
		t.Errorf("Expected h=%f, got %f", expectedH, h)
	}
	if math.Abs(w-2*expectedH) > 1e-9 {
		t.Errorf("Expected w=%f, got %f", 2*expectedH, w)
	}
	if s := camera.PixelScale(400, 200); math.Abs(s-expectedH/200) > 1e-12 {
		t.Errorf("Expected square pixels of %f, got %f", expectedH/200, s)
	}
}

func TestCamera_GetRay_ReferenceProjection(t *testing.T) {
	preset := scene.NewReferenceScene()
	camera, err := NewCameraFromConfig(preset.CameraConfig)
	if err != nil {
		t.Fatalf("NewCameraFromConfig: %v", err)
	}

	// The reference film is the world plane z = 0
	nx, ny := 64, 48
	h := 2.0 * 200 * math.Tan((120*math.Pi/180)/2)
	s := h * (float64(nx) / float64(ny)) / float64(nx)

	for _, px := range [][2]int{{0, 0}, {31, 17}, {63, 47}, {32, 24}} {
		i, j := px[0], px[1]
		point := core.NewVec3((float64(i)-float64(nx)/2)*s, (float64(j)-float64(ny)/2)*s, 0)
		expected, _ := point.Subtract(preset.CameraConfig.Eye).Normalize()

		ray, err := camera.GetRay(i, j, nx, ny)
		if err != nil {
			t.Fatalf("GetRay(%d, %d): %v", i, j, err)
		}
		if ray.Origin != preset.CameraConfig.Eye {
			t.Errorf("Ray origin %v, expected eye %v", ray.Origin, preset.CameraConfig.Eye)
		}
		if ray.Direction.Subtract(expected).Length() > 1e-12 {
			t.Errorf("Pixel (%d, %d): expected direction %v, got %v", i, j, expected, ray.Direction)
		}
		if math.Abs(ray.Direction.Length()-1) > 1e-12 {
			t.Errorf("Pixel (%d, %d): direction not unit length", i, j)
		}
	}
}

func TestCamera_GetRay_Orientation(t *testing.T) {
	camera, err := NewCameraDegrees(core.Vec3{}, 1, 90)
	if err != nil {
		t.Fatalf("NewCameraDegrees: %v", err)
	}

	bottomLeft, _ := camera.GetRay(0, 0, 10, 10)
	topRight, _ := camera.GetRay(9, 9, 10, 10)

	if bottomLeft.Direction.X >= 0 || bottomLeft.Direction.Y >= 0 {
		t.Errorf("Pixel (0,0) should look down-left, got %v", bottomLeft.Direction)
	}
	if topRight.Direction.X <= 0 || topRight.Direction.Y <= 0 {
		t.Errorf("Pixel (9,9) should look up-right, got %v", topRight.Direction)
	}
	if bottomLeft.Direction.Z >= 0 || topRight.Direction.Z >= 0 {
		t.Error("All primary rays should travel toward -z")
	}
}
