package body

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"starforge-server/internal/orbit"
	"starforge-server/internal/roll"
)

func planetOrbit() orbit.Orbit {
	return orbit.Orbit{
		Distance:     1.2,
		Kind:         orbit.BodyPlanet,
		Mass:         1.0,
		Type:         orbit.TypeTerran,
		HasMoons:     true,
		Eccentricity: 0.03,
		Inclination:  2.5,
		Temperature:  260,
	}
}

func TestPlanetGenerator(t *testing.T) {
	t.Run("carries orbit attributes through", func(t *testing.T) {
		g := NewPlanetGenerator(roll.New(1))
		p := g.Generate(3, planetOrbit())

		assert.Equal(t, 3, p.OrbitIndex)
		assert.Equal(t, orbit.TypeTerran, p.Type)
		assert.Equal(t, 1.2, p.DistanceAU)
		assert.Equal(t, 1.0, p.MassEarth)
		assert.Equal(t, 0.03, p.Eccentricity)
		assert.Equal(t, 2.5, p.Inclination)
	})

	t.Run("radius follows mass and density", func(t *testing.T) {
		g := NewPlanetGenerator(roll.New(2))
		for i := 0; i < 50; i++ {
			p := g.Generate(0, planetOrbit())
			assert.InDelta(t, math.Cbrt(p.MassEarth*5.51/p.Density), p.RadiusEarth, 1e-9)
			assert.Positive(t, p.Density)
		}
	})

	t.Run("greenhouse worlds run hotter than equilibrium", func(t *testing.T) {
		o := planetOrbit()
		o.Type = orbit.TypeGreenhouse

		g := NewPlanetGenerator(roll.New(3))
		for i := 0; i < 20; i++ {
			p := g.Generate(0, o)
			assert.Greater(t, p.SurfaceTemp, o.Temperature)
		}
	})

	t.Run("moons only appear when the orbit allows them", func(t *testing.T) {
		o := planetOrbit()
		o.HasMoons = false

		g := NewPlanetGenerator(roll.New(4))
		p := g.Generate(0, o)
		assert.Zero(t, p.Moons)

		o.HasMoons = true
		for i := 0; i < 50; i++ {
			p = g.Generate(0, o)
			assert.GreaterOrEqual(t, p.Moons, 1)
			assert.LessOrEqual(t, p.Moons, 4)
		}
	})
}

func TestBeltGenerator(t *testing.T) {
	o := orbit.Orbit{
		Distance:     3.0,
		Kind:         orbit.BodyAsteroidBelt,
		Mass:         0.05,
		Eccentricity: 0.2,
	}

	g := NewBeltGenerator(roll.New(1))
	for i := 0; i < 50; i++ {
		b := g.Generate(2, o)
		assert.Equal(t, 2, b.OrbitIndex)
		assert.Equal(t, 3.0, b.DistanceAU)
		assert.Equal(t, 0.05, b.MassEarth)
		assert.GreaterOrEqual(t, b.WidthAU, 3.0*0.05)
		assert.Less(t, b.WidthAU, 3.0*0.3)
	}
}
