package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewColor(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	random := rand.New(rand.NewSource(42))

	normal := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{
		Point:  core.NewVec3(1, 2, 3),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, random)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}

		// normal + unit vector lies in the unit sphere tangent to the surface
		offset := scatter.Scattered.Direction.Subtract(normal)
		if offset.Length() > 1+1e-9 {
			t.Fatalf("Scatter direction %v is not normal + unit vector", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Direction.Dot(normal) < 0 {
			t.Fatalf("Scatter direction %v points into the surface", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_NeverReturnsDegenerateDirection(t *testing.T) {
	lambertian := NewLambertian(core.NewColor(0.8, 0.8, 0.8))

	for seed := int64(0); seed < 200; seed++ {
		random := rand.New(rand.NewSource(seed))
		normal := core.RandomUnitVector(random)
		hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}

		scatter, _ := lambertian.Scatter(core.NewRay(normal, normal.Negate()), hit, random)
		if scatter.Scattered.Direction.NearZero() {
			t.Fatalf("Seed %d produced a degenerate direction", seed)
		}
	}
}
