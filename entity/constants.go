package entity

import "math"

const (
	Epsilon0 = 8.85e-12          // vacuum permittivity, F/m
	Mu0      = 4 * math.Pi * 1e-7 // vacuum permeability, H/m
)
