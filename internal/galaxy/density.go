package galaxy

import "math"

// densityFloor is the fraction of the base density every shaped branch is
// clamped to, so no region of a non-uniform galaxy goes completely dark.
const densityFloor = 0.1

// Density maps a cell position to a modified star-formation probability. It
// is a pure function of position: the caller applies randomness when deciding
// star presence. rel is the sector coordinate relative to the galactic
// center, cell the cell coordinate inside that sector. The result lies in
// [0, base] for every branch.
//
// An unrecognized galaxy type returns the base density unchanged, matching
// the uniform branch.
func Density(rel, cell Coordinate, base float64, gtype Type, sectorExtents, cellsPerSector int) float64 {
	if base <= 0 || cellsPerSector <= 0 {
		return 0
	}

	// Global cell position in cell units, relative to the galactic center.
	gx := float64(rel.X*cellsPerSector + cell.X)
	gy := float64(rel.Y*cellsPerSector + cell.Y)
	gz := float64(rel.Z*cellsPerSector + cell.Z)

	maxRadius := math.Sqrt(3) * float64(sectorExtents*cellsPerSector)
	if maxRadius <= 0 {
		maxRadius = 1
	}
	r := math.Sqrt(gx*gx + gy*gy + gz*gz)
	falloff := clamp01(1 - r/maxRadius)

	switch gtype {
	case TypeSpiral:
		angle := math.Atan2(gy, gx)
		radial := math.Hypot(gx, gy)
		arm := 0.5 + 0.5*math.Sin(angle*4+radial*0.1+math.Pi/2)
		vertical := clamp01(1 - math.Abs(gz)/(float64(sectorExtents*cellsPerSector)*0.25+1))
		return floorClamp(base*arm*falloff*vertical, base)

	case TypeElliptical:
		return floorClamp(base*falloff, base)

	case TypeIrregular:
		clumps := (0.5 + 0.5*math.Sin(gx*0.35)) *
			(0.5 + 0.5*math.Sin(gy*0.21)) *
			(0.5 + 0.5*math.Sin(gz*0.47))
		return floorClamp(base*falloff*clumps, base)
	}

	return base
}

func floorClamp(d, base float64) float64 {
	if min := base * densityFloor; d < min {
		return min
	}
	return d
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
