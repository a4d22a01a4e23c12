package star

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starforge-server/internal/roll"
)

func TestGenerate(t *testing.T) {
	t.Run("attributes stay inside the drawn class band", func(t *testing.T) {
		bands := make(map[string]classRange, len(classes))
		for _, c := range classes {
			bands[c.class] = c
		}

		g := NewGenerator(roll.New(11))
		for i := 0; i < 500; i++ {
			attrs := g.Generate()

			band, ok := bands[attrs.SpectralClass]
			require.True(t, ok, "unknown spectral class %q", attrs.SpectralClass)

			assert.GreaterOrEqual(t, attrs.Mass, band.minMass)
			assert.Less(t, attrs.Mass, band.maxMass)
			assert.GreaterOrEqual(t, attrs.Temperature, band.minTemp)
			assert.Less(t, attrs.Temperature, band.maxTemp)

			assert.InDelta(t, math.Pow(attrs.Mass, 0.8), attrs.Radius, 1e-9)
			assert.Positive(t, attrs.Luminosity)
			// Luminosity follows the mass-luminosity relation within the
			// 10% scatter band.
			assert.InEpsilon(t, math.Pow(attrs.Mass, 3.5), attrs.Luminosity, 0.11)
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := NewGenerator(roll.New(42))
		b := NewGenerator(roll.New(42))
		for i := 0; i < 50; i++ {
			assert.Equal(t, a.Generate(), b.Generate())
		}
	})

	t.Run("late classes dominate the draw", func(t *testing.T) {
		g := NewGenerator(roll.New(5))
		counts := make(map[string]int)
		for i := 0; i < 2000; i++ {
			counts[g.Generate().SpectralClass]++
		}
		assert.Greater(t, counts["M"], counts["O"])
		assert.Greater(t, counts["K"], counts["A"])
	})
}
