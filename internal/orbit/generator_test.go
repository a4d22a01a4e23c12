package orbit

import (
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starforge-server/internal/roll"
	"starforge-server/internal/zone"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(roll.New(seed), slog.Default())
}

func sunParams() StarParams {
	return StarParams{Mass: 1.0, Radius: 1.0, Luminosity: 1.0}
}

func TestHillRadius(t *testing.T) {
	t.Run("standard formula", func(t *testing.T) {
		h := HillRadius(1.0, 1.0, 100)
		assert.InDelta(t, 100*math.Cbrt(1.0/3.0), h, 1e-9)
	})

	t.Run("negligible companion substitutes a wide cap", func(t *testing.T) {
		assert.Equal(t, 40.0, HillRadius(1.0, 0, 100))
		assert.Equal(t, 40.0, HillRadius(1.0, 0.0005, 1))
		assert.InDelta(t, math.Sqrt(4)*40, HillRadius(4.0, 0, 100), 1e-9)
	})
}

func TestEquilibriumTemperature(t *testing.T) {
	t.Run("earthlike reference", func(t *testing.T) {
		temp := EquilibriumTemperature(1.0, 1.0, 0.3)
		assert.InDelta(t, 278.3*math.Pow(0.7, 0.25), temp, 1e-6)
	})

	t.Run("falls with distance", func(t *testing.T) {
		near := EquilibriumTemperature(1.0, 0.5, 0.3)
		far := EquilibriumTemperature(1.0, 5.0, 0.3)
		assert.Greater(t, near, far)
	})

	t.Run("degenerate inputs return zero", func(t *testing.T) {
		assert.Zero(t, EquilibriumTemperature(1.0, 0, 0.3))
		assert.Zero(t, EquilibriumTemperature(0, 1.0, 0.3))
	})
}

func TestCircumstellar(t *testing.T) {
	zones := zone.ForStar(1.0, 1.0, 1.0, 5778)

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := newTestGenerator(42).Circumstellar(sunParams(), zones, 0, 0)
		b := newTestGenerator(42).Circumstellar(sunParams(), zones, 0, 0)
		assert.Equal(t, a, b)
	})

	t.Run("orbits respect the band and the stability rules", func(t *testing.T) {
		radiusAU := 1.0 * zone.SolarRadiusAU
		maxDist := math.Sqrt(1.0) * 40 * 0.9

		for seed := int64(1); seed <= 25; seed++ {
			orbits := newTestGenerator(seed).Circumstellar(sunParams(), zones, 0, 0)

			for i, o := range orbits {
				assert.Greater(t, o.Distance, 1.1*radiusAU)
				assert.GreaterOrEqual(t, o.Distance, zone.RocheLimit(1.0))
				assert.LessOrEqual(t, o.Distance, maxDist)
				if i > 0 {
					prev := orbits[i-1]
					assert.Greater(t, o.Distance, prev.Distance, "distances must increase")

					hill := prev.Distance * math.Cbrt(prev.Mass/(3*EarthMassesPerSolar*1.0))
					assert.GreaterOrEqual(t, o.Distance-prev.Distance, 8*hill,
						"seed %d orbit %d too close to predecessor", seed, i)
				}
			}
		}
	})

	t.Run("orbit attributes are populated", func(t *testing.T) {
		for seed := int64(1); seed <= 10; seed++ {
			orbits := newTestGenerator(seed).Circumstellar(sunParams(), zones, 0, 0)
			for _, o := range orbits {
				assert.Positive(t, o.Mass)
				assert.Positive(t, o.Temperature)
				assert.GreaterOrEqual(t, o.Eccentricity, 0.0)
				assert.Less(t, o.Eccentricity, 1.0)
				assert.GreaterOrEqual(t, o.Inclination, 0.0)
				assert.LessOrEqual(t, o.Inclination, 30.0)
				assert.Equal(t, o.Zone.String(), o.ZoneName)

				switch o.Kind {
				case BodyPlanet:
					assert.NotEmpty(t, o.Type)
				case BodyAsteroidBelt:
					assert.LessOrEqual(t, o.Mass, 0.1)
				default:
					t.Fatalf("unexpected body kind %q", o.Kind)
				}
			}
		}
	})

	t.Run("close companion shrinks the band", func(t *testing.T) {
		// Hill radius against an equal-mass companion at 20 AU caps the
		// band at 0.3x instead of 0.9x.
		maxWithCompanion := 20 * math.Cbrt(1.0/3.0) * 0.3

		for seed := int64(1); seed <= 25; seed++ {
			orbits := newTestGenerator(seed).Circumstellar(sunParams(), zones, 1.0, 20)
			for _, o := range orbits {
				assert.LessOrEqual(t, o.Distance, maxWithCompanion)
			}
		}
	})
}

func TestCircumbinary(t *testing.T) {
	t.Run("distant equal pair yields no orbits", func(t *testing.T) {
		g := newTestGenerator(42)
		zones := zone.ForPair(2.0, 2.0, 1000)

		orbits := g.Circumbinary(zones, 1.0, 1.0, 1000, 1.0, 1.0, 2.0)
		assert.Empty(t, orbits)
	})

	t.Run("non-overlapping hill spheres yield no orbits", func(t *testing.T) {
		g := newTestGenerator(42)
		zones := zone.ForPair(0.0105, 0.001, 500)

		// A substellar object with a negligible companion 500 AU away: the
		// capped Hill radius plus the companion's stay below the separation.
		orbits := g.Circumbinary(zones, 0.01, 0.0005, 500, 0.1, 0.05, 0.001)
		assert.Empty(t, orbits)
	})

	t.Run("empty band yields no orbits", func(t *testing.T) {
		// The 2.5x separation floor always exceeds 0.2x the smaller Hill
		// radius for stellar-mass pairs, so the band is empty.
		g := newTestGenerator(7)
		zones := zone.ForPair(2.0, 2.0, 5)

		orbits := g.Circumbinary(zones, 1.0, 1.0, 5, 1.0, 1.0, 2.0)
		assert.Empty(t, orbits)
	})
}

func TestPlanetMassTables(t *testing.T) {
	src := roll.New(3)

	kinds := []zone.Kind{zone.Epistellar, zone.Inner, zone.Habitable, zone.Outer, zone.FarOuter}
	for _, k := range kinds {
		for i := 0; i < 200; i++ {
			m := planetMass(src, k)
			require.GreaterOrEqual(t, m, 0.001, "zone %s", k)
		}
	}
}

func TestBeltChance(t *testing.T) {
	assert.Equal(t, 0.05, beltChance(zone.Inner))
	assert.Equal(t, 0.01, beltChance(zone.Habitable))
	assert.Equal(t, 0.15, beltChance(zone.Outer))
	assert.Equal(t, 0.20, beltChance(zone.FarOuter))
	assert.Equal(t, 0.10, beltChance(zone.Epistellar))
}

func TestClassifyPlanet(t *testing.T) {
	t.Run("massive bodies become giants", func(t *testing.T) {
		pt := classifyPlanet(400, 1.3, 150, 0.1, false)
		assert.Contains(t, []PlanetType{TypeGasGiant, TypeSuperJupiter}, pt)
	})

	t.Run("hot giants are flagged hot", func(t *testing.T) {
		pt := classifyPlanet(400, 1.3, 1200, 0.1, true)
		assert.Contains(t, []PlanetType{TypeHotJupiter, TypeSuperJupiter}, pt)
	})

	t.Run("small cold bodies freeze", func(t *testing.T) {
		pt := classifyPlanet(0.5, 2.0, 60, 0.5, false)
		assert.Contains(t, []PlanetType{TypeFrozen, TypeIce, TypeIceDwarf}, pt)
	})
}
