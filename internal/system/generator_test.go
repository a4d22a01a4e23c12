package system

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starforge-server/internal/roll"
	"starforge-server/internal/zone"
)

func newTestGenerator(seed int64, weights []int) *Generator {
	return NewGenerator(roll.New(seed), Config{StarCountWeights: weights}, slog.Default())
}

func TestGenerate(t *testing.T) {
	t.Run("single star system has no pairs", func(t *testing.T) {
		g := newTestGenerator(42, []int{1})
		sys := NewStarSystem("sys-1", "sec-1", Position{})
		g.Generate(sys)

		require.Len(t, sys.Stars, 1)
		assert.Empty(t, sys.Pairs)
		assert.Empty(t, sys.RootPairID)

		st := sys.Stars[0]
		assert.Equal(t, "sys-1-star-0", st.ID)
		assert.Equal(t, "sys-1", st.SystemID)
		assert.Positive(t, st.Mass)
		assert.NotEmpty(t, st.SpectralClass)
		assert.Positive(t, st.Zones.SystemLimit)
	})

	t.Run("two star system forms one pair", func(t *testing.T) {
		g := newTestGenerator(42, []int{0, 1})
		sys := NewStarSystem("sys-2", "sec-1", Position{})
		g.Generate(sys)

		require.Len(t, sys.Stars, 2)
		require.Len(t, sys.Pairs, 1)
		assert.Equal(t, sys.Pairs[0].ID, sys.RootPairID)

		p := sys.Pairs[0]
		assert.Equal(t, ComponentStar, p.Primary.Kind)
		assert.Equal(t, ComponentStar, p.Secondary.Kind)
		assert.Positive(t, p.SeparationDistance)
		assert.Positive(t, p.OrbitalPeriod)

		// Primary is the more massive side.
		primary := sys.StarByID(p.Primary.ID)
		secondary := sys.StarByID(p.Secondary.ID)
		require.NotNil(t, primary)
		require.NotNil(t, secondary)
		assert.GreaterOrEqual(t, primary.Mass, secondary.Mass)

		// Barycentric radii split the separation by inverse mass.
		assert.InDelta(t, p.SeparationDistance, p.PrimaryOrbitRadius+p.SecondaryOrbitRadius, 1e-9)
		assert.LessOrEqual(t, p.PrimaryOrbitRadius, p.SecondaryOrbitRadius)
	})

	t.Run("quadruple system builds a strict tree", func(t *testing.T) {
		g := newTestGenerator(7, []int{0, 0, 0, 1})
		sys := NewStarSystem("sys-4", "sec-1", Position{})
		g.Generate(sys)

		require.Len(t, sys.Stars, 4)
		require.Len(t, sys.Pairs, 3)
		require.NotEmpty(t, sys.RootPairID)

		// Walking from the root must reach every star exactly once.
		seen := make(map[string]int)
		var walk func(c Component)
		walk = func(c Component) {
			switch c.Kind {
			case ComponentStar:
				seen[c.ID]++
			case ComponentPair:
				p := sys.PairByID(c.ID)
				require.NotNil(t, p)
				walk(p.Primary)
				walk(p.Secondary)
			}
		}
		walk(Component{Kind: ComponentPair, ID: sys.RootPairID})

		assert.Len(t, seen, 4)
		for id, n := range seen {
			assert.Equal(t, 1, n, "star %s reached %d times", id, n)
		}
	})

	t.Run("same seed reproduces an identical system", func(t *testing.T) {
		build := func() *StarSystem {
			g := newTestGenerator(99, []int{40, 40, 20})
			sys := NewStarSystem("sys-d", "sec-1", Position{X: 1, Y: 2, Z: 3})
			g.Generate(sys)
			return sys
		}

		a, err := json.Marshal(build())
		require.NoError(t, err)
		b, err := json.Marshal(build())
		require.NoError(t, err)
		assert.JSONEq(t, string(a), string(b))
	})
}

func TestComputePairZones(t *testing.T) {
	addStar := func(sys *StarSystem, id string, mass, radius, lum, temp float64) *Star {
		st := &Star{ID: id, Mass: mass, Radius: radius, Luminosity: lum, Temperature: temp}
		st.Zones = zone.ForStar(mass, radius, lum, temp)
		sys.AddStar(st)
		return st
	}

	t.Run("close pair absorbs both stars into a synthetic star", func(t *testing.T) {
		g := newTestGenerator(1, nil)
		sys := NewStarSystem("sys-c", "sec-1", Position{})
		a := addStar(sys, "a", 1.0, 1.0, 1.0, 5778)
		b := addStar(sys, "b", 0.5, 0.6, 0.08, 4000)

		pair := &BinaryPair{
			ID:                 "p1",
			Primary:            Component{Kind: ComponentStar, ID: a.ID},
			Secondary:          Component{Kind: ComponentStar, ID: b.ID},
			SeparationDistance: 5,
		}
		sys.AddPair(pair)

		absorbed := make(map[string]bool)
		g.computePairZones(sys, pair, absorbed)

		assert.True(t, absorbed["a"])
		assert.True(t, absorbed["b"])

		assert.Equal(t, zone.ForStar(1.5, 1.0, 1.08, 5778), pair.CircumbinaryZones)

		// Both members' individual zones are clamped by the companion.
		assert.InDelta(t, 1.5, a.Zones.SystemLimit, 1e-9)
		assert.InDelta(t, 1.5, b.Zones.SystemLimit, 1e-9)
	})

	t.Run("wide pair keeps both stars and gets barycentric zones", func(t *testing.T) {
		g := newTestGenerator(1, nil)
		sys := NewStarSystem("sys-w", "sec-1", Position{})
		a := addStar(sys, "a", 1.0, 1.0, 1.0, 5778)
		b := addStar(sys, "b", 0.9, 0.92, 0.7, 5500)

		pair := &BinaryPair{
			ID:                 "p1",
			Primary:            Component{Kind: ComponentStar, ID: a.ID},
			Secondary:          Component{Kind: ComponentStar, ID: b.ID},
			SeparationDistance: 50,
		}
		sys.AddPair(pair)

		absorbed := make(map[string]bool)
		g.computePairZones(sys, pair, absorbed)

		assert.Empty(t, absorbed)
		assert.Equal(t, zone.ForPair(1.9, 1.7, 50), pair.CircumbinaryZones)

		// Interference still clamps each star's own zones.
		assert.InDelta(t, 15.0, a.Zones.SystemLimit, 1e-9)
	})

	t.Run("deep hierarchy falls back to the flat estimate", func(t *testing.T) {
		g := newTestGenerator(1, nil)
		sys := NewStarSystem("sys-d", "sec-1", Position{})
		a := addStar(sys, "a", 1.0, 1.0, 1.0, 5778)
		b := addStar(sys, "b", 0.8, 0.84, 0.45, 5300)
		c := addStar(sys, "c", 0.3, 0.38, 0.015, 3400)

		inner := &BinaryPair{
			ID:                 "inner",
			Primary:            Component{Kind: ComponentStar, ID: b.ID},
			Secondary:          Component{Kind: ComponentStar, ID: c.ID},
			SeparationDistance: 2,
		}
		sys.AddPair(inner)
		inner.CircumbinaryZones = zone.ForStar(1.1, 0.84, 0.465, 5300)

		outer := &BinaryPair{
			ID:                 "outer",
			Primary:            Component{Kind: ComponentStar, ID: a.ID},
			Secondary:          Component{Kind: ComponentPair, ID: inner.ID},
			SeparationDistance: 100,
		}
		sys.AddPair(outer)

		absorbed := make(map[string]bool)
		g.computePairZones(sys, outer, absorbed)

		assert.Equal(t, zone.Simplified(100), outer.CircumbinaryZones)
		assert.False(t, outer.CircumbinaryZones.HabitableAvailable())

		// The nested pair's circumbinary zones take the interference clamp.
		assert.InDelta(t, 30.0, inner.CircumbinaryZones.SystemLimit, 1e-9)
	})
}

func TestAggregate(t *testing.T) {
	sys := NewStarSystem("sys-a", "sec-1", Position{})
	sys.AddStar(&Star{ID: "s1", Mass: 3.0, Radius: 2.0, Luminosity: 40, Temperature: 9000})
	sys.AddStar(&Star{ID: "s2", Mass: 1.0, Radius: 1.0, Luminosity: 1, Temperature: 5778})
	sys.AddPair(&BinaryPair{
		ID:        "p1",
		Primary:   Component{Kind: ComponentStar, ID: "s1"},
		Secondary: Component{Kind: ComponentStar, ID: "s2"},
	})

	t.Run("combines star properties over the tree", func(t *testing.T) {
		c := Component{Kind: ComponentPair, ID: "p1"}
		assert.Equal(t, 4.0, sys.CombinedMass(c))
		assert.Equal(t, 41.0, sys.CombinedLuminosity(c))
		assert.Equal(t, 2.0, sys.MaxRadius(c))
		assert.Equal(t, 9000.0, sys.MaxTemperature(c))
	})

	t.Run("missing ids contribute zero", func(t *testing.T) {
		assert.Zero(t, sys.CombinedMass(Component{Kind: ComponentStar, ID: "ghost"}))
		assert.Zero(t, sys.CombinedMass(Component{Kind: ComponentPair, ID: "ghost"}))

		broken := Component{Kind: ComponentPair, ID: "p2"}
		sys.AddPair(&BinaryPair{
			ID:        "p2",
			Primary:   Component{Kind: ComponentStar, ID: "s1"},
			Secondary: Component{Kind: ComponentStar, ID: "ghost"},
		})
		assert.Equal(t, 3.0, sys.CombinedMass(broken))
	})
}

func TestRebuildIndex(t *testing.T) {
	sys := &StarSystem{
		ID:    "sys-r",
		Stars: []*Star{{ID: "s1"}, {ID: "s2"}},
		Pairs: []*BinaryPair{{ID: "p1"}},
	}

	assert.Nil(t, sys.StarByID("s1"))

	sys.RebuildIndex()
	assert.NotNil(t, sys.StarByID("s1"))
	assert.NotNil(t, sys.StarByID("s2"))
	assert.NotNil(t, sys.PairByID("p1"))
	assert.Nil(t, sys.StarByID("s3"))
}
