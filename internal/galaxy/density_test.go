package galaxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensity(t *testing.T) {
	center := Coordinate{}
	cell := Coordinate{X: 3, Y: 4, Z: 5}

	t.Run("uniform passes the base through", func(t *testing.T) {
		assert.Equal(t, 0.05, Density(center, cell, 0.05, TypeUniform, 10, 10))
	})

	t.Run("zero base always yields zero", func(t *testing.T) {
		for _, gtype := range []Type{TypeUniform, TypeSpiral, TypeElliptical, TypeIrregular} {
			assert.Zero(t, Density(center, cell, 0, gtype, 10, 10))
		}
	})

	t.Run("unknown type falls back to uniform", func(t *testing.T) {
		assert.Equal(t, 0.05, Density(center, cell, 0.05, Type("ring"), 10, 10))
	})

	t.Run("shaped branches stay within the floor and the base", func(t *testing.T) {
		for _, gtype := range []Type{TypeSpiral, TypeElliptical, TypeIrregular} {
			for x := -5; x <= 5; x += 2 {
				for y := -5; y <= 5; y += 2 {
					rel := Coordinate{X: x, Y: y, Z: 0}
					for cx := 0; cx < 10; cx += 3 {
						d := Density(rel, Coordinate{X: cx, Y: cx, Z: cx}, 0.1, gtype, 10, 10)
						assert.GreaterOrEqual(t, d, 0.1*0.1, "type %s", gtype)
						assert.LessOrEqual(t, d, 0.1, "type %s", gtype)
					}
				}
			}
		}
	})

	t.Run("elliptical falls off with distance from the center", func(t *testing.T) {
		near := Density(Coordinate{}, Coordinate{X: 1}, 0.1, TypeElliptical, 10, 10)
		far := Density(Coordinate{X: 9}, Coordinate{X: 9}, 0.1, TypeElliptical, 10, 10)
		assert.Greater(t, near, far)
	})

	t.Run("pure function of position", func(t *testing.T) {
		a := Density(Coordinate{X: 2, Y: -1}, cell, 0.07, TypeSpiral, 10, 10)
		b := Density(Coordinate{X: 2, Y: -1}, cell, 0.07, TypeSpiral, 10, 10)
		assert.Equal(t, a, b)
	})
}

func TestParseType(t *testing.T) {
	for _, valid := range []string{"uniform", "spiral", "elliptical", "irregular"} {
		gt, err := ParseType(valid)
		require.NoError(t, err)
		assert.Equal(t, Type(valid), gt)
	}

	_, err := ParseType("lenticular")
	assert.Error(t, err)

	_, err = ParseType("")
	assert.Error(t, err)
}

func TestCoordinate(t *testing.T) {
	a := Coordinate{X: 1, Y: -2, Z: 3}
	b := Coordinate{X: 4, Y: 5, Z: -6}

	assert.Equal(t, Coordinate{X: 5, Y: 3, Z: -3}, a.Add(b))
	assert.Equal(t, Coordinate{X: -3, Y: -7, Z: 9}, a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
}
