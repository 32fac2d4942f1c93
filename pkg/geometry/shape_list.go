package geometry

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// ShapeList is an ordered collection of shapes queried as one surface
type ShapeList struct {
	shapes []core.Shape
}

// NewShapeList creates a list holding the given shapes
func NewShapeList(shapes ...core.Shape) *ShapeList {
	return &ShapeList{shapes: append([]core.Shape(nil), shapes...)}
}

// Add appends shapes to the list
func (l *ShapeList) Add(shapes ...core.Shape) {
	l.shapes = append(l.shapes, shapes...)
}

// Len returns the number of shapes in the list
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Shapes returns the members of the list
func (l *ShapeList) Shapes() []core.Shape {
	return l.shapes
}

// Hit returns the closest hit over every member
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	hit, _, isHit := l.HitShape(ray, tMin, tMax)
	return hit, isHit
}

// HitShape is Hit that also returns the member that was hit. Each query is
// bounded by the nearest t found so far, so farther candidates are rejected
// by the shapes.
func (l *ShapeList) HitShape(ray core.Ray, tMin, tMax float64) (*core.HitRecord, core.Shape, bool) {
	var closestHit *core.HitRecord
	var closestShape core.Shape
	closestSoFar := tMax

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit, closestShape = hit, shape
		}
	}

	return closestHit, closestShape, closestHit != nil
}
