// Package galaxy models galaxy-scale shape and the star-formation density
// field sampled by the sector generator.
package galaxy

import "fmt"

// Type is the overall shape of the galaxy, which modulates star-formation
// density across sectors.
type Type string

const (
	TypeUniform    Type = "uniform"
	TypeSpiral     Type = "spiral"
	TypeElliptical Type = "elliptical"
	TypeIrregular  Type = "irregular"
)

// ParseType validates a galaxy type code from configuration. Unknown codes
// are a configuration error at startup; at density-sampling time an unknown
// type falls back to uniform instead (see Density).
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeUniform, TypeSpiral, TypeElliptical, TypeIrregular:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown galaxy type %q", s)
}

// Coordinate identifies a sector (or a cell within one) on the integer
// galactic grid. Sector coordinates are relative to the galactic center.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Add returns the component-wise sum of two coordinates.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns the component-wise difference of two coordinates.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}
