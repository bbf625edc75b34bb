package entity

import (
	"math"
	"strconv"
)

// FieldVector holds the x, y, z components of a field. The zero value is (0, 0, 0).
type FieldVector struct {
	X, Y, Z float64
}

func NewFieldVector(x, y, z float64) FieldVector {
	return FieldVector{X: x, Y: y, Z: z}
}

func (v FieldVector) Copy() FieldVector {
	return FieldVector{X: v.X, Y: v.Y, Z: v.Z}
}

func (v FieldVector) Components() (x, y, z float64) {
	return v.X, v.Y, v.Z
}

func (v FieldVector) Add(o FieldVector) FieldVector {
	return FieldVector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Norm returns the Euclidean length of the vector.
func (v FieldVector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v FieldVector) String() string {
	return "Components: " + v.tuple()
}

func (v FieldVector) tuple() string {
	return "(" + FormatValue(v.X) + ", " + FormatValue(v.Y) + ", " + FormatValue(v.Z) + ")"
}

// FormatValue prints a float with 6 significant digits, e.g. 100000, 1e+06, 2e-05.
func FormatValue(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
