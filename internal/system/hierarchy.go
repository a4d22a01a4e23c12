package system

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"starforge-server/internal/roll"
	"starforge-server/internal/zone"
)

// Separation buckets in AU before mass scaling: close, medium, wide,
// very wide, weighted 20/40/30/10.
var (
	separationBuckets = [4][2]float64{
		{0.1, 1},
		{1, 10},
		{10, 100},
		{100, 1000},
	}
	separationWeights = []int{20, 40, 30, 10}
)

// minSeparationFactor scales the summed stellar radii into a minimum safe
// separation.
const minSeparationFactor = 2.5

// organize partitions a system's stars into nested binary pairs and returns
// the root pair id, or "" for zero or one stars. Every created pair is
// registered on the system; the hierarchy is a strict tree because each
// recursion level consumes at least one star.
func (g *Generator) organize(sys *StarSystem, stars []*Star) string {
	if len(stars) < 2 {
		return ""
	}

	sorted := make([]*Star, len(stars))
	copy(sorted, stars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Mass > sorted[j].Mass
	})

	root := g.buildHierarchy(sys, sorted)
	if root.Kind != ComponentPair {
		return ""
	}
	return root.ID
}

func (g *Generator) buildHierarchy(sys *StarSystem, stars []*Star) Component {
	if len(stars) == 1 {
		return Component{Kind: ComponentStar, ID: stars[0].ID}
	}

	if len(stars) == 2 {
		primary := Component{Kind: ComponentStar, ID: stars[0].ID}
		secondary := Component{Kind: ComponentStar, ID: stars[1].ID}
		return g.makePair(sys, primary, secondary)
	}

	// The most massive star anchors the pair; the remainder collapses into
	// a sub-hierarchy on the secondary side.
	primary := Component{Kind: ComponentStar, ID: stars[0].ID}
	secondary := g.buildHierarchy(sys, stars[1:])
	return g.makePair(sys, primary, secondary)
}

// makePair creates and registers a BinaryPair from two resolved components,
// sampling the separation and deriving period and per-component orbit radii.
func (g *Generator) makePair(sys *StarSystem, primary, secondary Component) Component {
	massP := sys.CombinedMass(primary)
	massS := sys.CombinedMass(secondary)
	totalMass := massP + massS

	radiusP := sys.MaxRadius(primary)
	radiusS := sys.MaxRadius(secondary)

	massRatio := 1.0
	if bigger := math.Max(massP, massS); bigger > 0 {
		massRatio = math.Min(massP, massS) / bigger
	}

	minSafe := (radiusP + radiusS) * minSeparationFactor * zone.SolarRadiusAU
	separation := sampleSeparation(g.roll, totalMass, massRatio, minSafe)

	// Kepler's third law in AU / solar-mass / year units.
	period := 0.0
	if totalMass > 0 {
		period = math.Sqrt(math.Pow(separation, 3) / totalMass)
	}

	// Name-based UUID so pair ids reproduce with the rest of the system.
	name := fmt.Sprintf("%s-pair-%d", sys.ID, len(sys.Pairs))
	pair := &BinaryPair{
		ID:                 uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String(),
		Primary:            primary,
		Secondary:          secondary,
		SeparationDistance: separation,
		OrbitalPeriod:      period,
	}
	if totalMass > 0 {
		pair.PrimaryOrbitRadius = separation * massS / totalMass
		pair.SecondaryOrbitRadius = separation * massP / totalMass
	}

	sys.AddPair(pair)
	return Component{Kind: ComponentPair, ID: pair.ID}
}

// sampleSeparation draws a separation in AU: a weighted orbit-width bucket
// scaled by the cube root of the total mass, widened for very uneven pairs,
// with the lower bound clamped to the minimum safe separation.
func sampleSeparation(src *roll.Source, totalMass, massRatio, minSafe float64) float64 {
	bucket := separationBuckets[src.Weighted(separationWeights)]

	scale := math.Cbrt(math.Max(totalMass, 0.01))
	lo := bucket[0] * scale
	hi := bucket[1] * scale

	if massRatio < 0.2 {
		hi *= 2
	}
	if lo < minSafe {
		lo = minSafe
	}
	if hi <= lo {
		hi = lo * 1.01
	}

	return src.Uniform(lo, hi)
}
