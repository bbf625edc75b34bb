package entity

import "math"

// ElectricField is a field vector paired with a magnitude computed from Gauss' Law.
type ElectricField struct {
	FieldVector
	magnitude float64
}

func NewElectricField(x, y, z float64) ElectricField {
	return ElectricField{FieldVector: NewFieldVector(x, y, z)}
}

// GaussField returns the field magnitude of a point charge at the given distance.
// Zero distance is not guarded and yields an infinite or NaN result.
func GaussField(charge, distance float64) float64 {
	return charge / (4 * math.Pi * distance * distance * Epsilon0)
}

func (e *ElectricField) ComputeFromPointCharge(charge, distance float64) {
	e.magnitude = GaussField(charge, distance)
}

func (e ElectricField) Magnitude() float64 {
	return e.magnitude
}

// Add sums the components of both samples. The result has no computed magnitude.
func (e ElectricField) Add(other ElectricField) ElectricField {
	return ElectricField{FieldVector: e.FieldVector.Add(other.FieldVector)}
}

func (e ElectricField) String() string {
	return "E-Field: " + e.tuple()
}
