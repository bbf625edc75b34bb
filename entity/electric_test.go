package entity

import (
	"math"
	"testing"
)

func TestElectricFieldDefault(t *testing.T) {
	var e ElectricField
	if e.FieldVector != (FieldVector{}) || e.Magnitude() != 0 {
		t.Fatalf("zero value got %v, magnitude %v", e, e.Magnitude())
	}
	if e := NewElectricField(1, 2, 3); e.Magnitude() != 0 {
		t.Fatalf("new sample has magnitude %v", e.Magnitude())
	}
}

func TestComputeFromPointCharge(t *testing.T) {
	e := NewElectricField(0, 1e5, 1e3)
	e.ComputeFromPointCharge(1e-6, 0.1)

	want := 1e-6 / (4 * math.Pi * 0.01 * 8.85e-12)
	if !almostEqual(e.Magnitude(), want) {
		t.Fatalf("magnitude got %v, want %v", e.Magnitude(), want)
	}
	if e.Magnitude() < 8.98e5 || e.Magnitude() > 9.0e5 {
		t.Fatalf("magnitude %v out of expected range", e.Magnitude())
	}
	if e.FieldVector != NewFieldVector(0, 1e5, 1e3) {
		t.Fatalf("compute changed components: %v", e.FieldVector)
	}
}

func TestGaussFieldZeroDistance(t *testing.T) {
	if got := GaussField(1e-6, 0); !math.IsInf(got, 1) {
		t.Fatalf("got %v, want +Inf", got)
	}
	if got := GaussField(0, 0); !math.IsNaN(got) {
		t.Fatalf("got %v, want NaN", got)
	}
}

func TestElectricFieldAdd(t *testing.T) {
	e1 := NewElectricField(0, 1e5, 1e3)
	e2 := NewElectricField(1e4, 2e5, 3e3)
	e1.ComputeFromPointCharge(1e-6, 0.1)

	sum := e1.Add(e2)
	if sum.FieldVector != NewFieldVector(1e4, 3e5, 4e3) {
		t.Fatalf("sum got %v", sum.FieldVector)
	}
	if sum.Magnitude() != 0 {
		t.Fatalf("sum carries magnitude %v", sum.Magnitude())
	}
	if rev := e2.Add(e1); rev.FieldVector != sum.FieldVector {
		t.Fatalf("add not commutative: %v vs %v", rev, sum)
	}
	if got := sum.String(); got != "E-Field: (10000, 300000, 4000)" {
		t.Fatalf("String got %q", got)
	}
}
