package entity

import "math"

// MagneticField is a field vector paired with a magnitude computed from Ampère's Law.
type MagneticField struct {
	FieldVector
	magnitude float64
}

func NewMagneticField(x, y, z float64) MagneticField {
	return MagneticField{FieldVector: NewFieldVector(x, y, z)}
}

// AmpereField returns the field magnitude around a long straight wire.
// Zero distance is not guarded.
func AmpereField(current, distance float64) float64 {
	return (Mu0 * current) / (2 * math.Pi * distance)
}

func (b *MagneticField) ComputeFromCurrent(current, distance float64) {
	b.magnitude = AmpereField(current, distance)
}

func (b MagneticField) Magnitude() float64 {
	return b.magnitude
}

func (b MagneticField) Add(other MagneticField) MagneticField {
	return MagneticField{FieldVector: b.FieldVector.Add(other.FieldVector)}
}

func (b MagneticField) String() string {
	return "B-Field: " + b.tuple()
}
