package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-simple-raytracer/pkg/core"
)

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 5, 0))

	if light.Type() != LightTypePoint {
		t.Errorf("Expected point light type, got %s", light.Type())
	}

	sample, err := light.Sample(core.NewVec3(0, 1, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expectedDirection := core.NewVec3(0, 1, 0)
	if sample.Direction.Subtract(expectedDirection).Length() > 1e-12 {
		t.Errorf("Expected direction %v, got %v", expectedDirection, sample.Direction)
	}
	if math.Abs(sample.Distance-4) > 1e-12 {
		t.Errorf("Expected distance 4, got %f", sample.Distance)
	}
}

func TestPointLight_SampleAtLight(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 2, 3))
	if _, err := light.Sample(core.NewVec3(1, 2, 3)); !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector, got %v", err)
	}
}
