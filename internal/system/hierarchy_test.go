package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starforge-server/internal/roll"
)

func TestOrganize(t *testing.T) {
	addStars := func(sys *StarSystem, masses ...float64) []*Star {
		stars := make([]*Star, 0, len(masses))
		for i, m := range masses {
			st := &Star{ID: string(rune('a' + i)), Mass: m, Radius: 1.0}
			sys.AddStar(st)
			stars = append(stars, st)
		}
		return stars
	}

	t.Run("fewer than two stars form no hierarchy", func(t *testing.T) {
		g := newTestGenerator(1, nil)

		sys := NewStarSystem("sys", "sec", Position{})
		assert.Empty(t, g.organize(sys, nil))

		addStars(sys, 1.0)
		assert.Empty(t, g.organize(sys, sys.Stars))
		assert.Empty(t, sys.Pairs)
	})

	t.Run("three stars nest into two pairs anchored by the most massive", func(t *testing.T) {
		g := newTestGenerator(42, nil)
		sys := NewStarSystem("sys", "sec", Position{})
		stars := addStars(sys, 3.0, 1.0, 0.5)

		rootID := g.organize(sys, sys.Stars)
		require.NotEmpty(t, rootID)
		require.Len(t, sys.Pairs, 2)
		assert.Equal(t, rootID, sys.Pairs[len(sys.Pairs)-1].ID)

		root := sys.PairByID(rootID)
		require.NotNil(t, root)

		// The 3.0 solar-mass star anchors the root; the lighter two collapse
		// into the nested pair on the secondary side.
		require.Equal(t, ComponentStar, root.Primary.Kind)
		assert.Equal(t, stars[0].ID, root.Primary.ID)
		require.Equal(t, ComponentPair, root.Secondary.Kind)

		nested := sys.PairByID(root.Secondary.ID)
		require.NotNil(t, nested)
		assert.Equal(t, stars[1].ID, nested.Primary.ID)
		assert.Equal(t, stars[2].ID, nested.Secondary.ID)

		assert.InDelta(t, 4.5, sys.CombinedMass(Component{Kind: ComponentPair, ID: rootID}), 1e-9)
	})

	t.Run("unsorted input still anchors the most massive star", func(t *testing.T) {
		g := newTestGenerator(7, nil)
		sys := NewStarSystem("sys", "sec", Position{})
		stars := addStars(sys, 0.5, 3.0, 1.0)

		rootID := g.organize(sys, sys.Stars)
		root := sys.PairByID(rootID)
		require.NotNil(t, root)
		assert.Equal(t, stars[1].ID, root.Primary.ID)
	})

	t.Run("pair geometry is self-consistent", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			g := newTestGenerator(seed, nil)
			sys := NewStarSystem("sys", "sec", Position{})
			addStars(sys, 1.2, 0.8)

			rootID := g.organize(sys, sys.Stars)
			p := sys.PairByID(rootID)
			require.NotNil(t, p)

			assert.Positive(t, p.SeparationDistance)
			assert.Positive(t, p.OrbitalPeriod)
			assert.InDelta(t, p.SeparationDistance,
				p.PrimaryOrbitRadius+p.SecondaryOrbitRadius, 1e-9)
		}
	})
}

func TestSampleSeparation(t *testing.T) {
	t.Run("respects the minimum safe separation", func(t *testing.T) {
		src := roll.New(3)
		for i := 0; i < 500; i++ {
			sep := sampleSeparation(src, 2.0, 0.8, 5.0)
			assert.GreaterOrEqual(t, sep, 5.0)
		}
	})

	t.Run("stays inside the widest scaled bucket", func(t *testing.T) {
		src := roll.New(4)
		scale := 2.0 // cbrt(8)
		for i := 0; i < 500; i++ {
			sep := sampleSeparation(src, 8.0, 0.9, 0.001)
			assert.GreaterOrEqual(t, sep, separationBuckets[0][0]*scale)
			assert.Less(t, sep, separationBuckets[3][1]*scale)
		}
	})

	t.Run("uneven pairs can reach doubled ranges", func(t *testing.T) {
		src := roll.New(5)
		maxSeen := 0.0
		for i := 0; i < 2000; i++ {
			sep := sampleSeparation(src, 1.0, 0.1, 0.001)
			assert.Less(t, sep, separationBuckets[3][1]*2)
			if sep > maxSeen {
				maxSeen = sep
			}
		}
		assert.Greater(t, maxSeen, separationBuckets[3][1])
	})
}
