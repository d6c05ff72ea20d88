// Package static resolves districts from an ordered table of bounding
// boxes. Zero network dependency, deterministic, instant; geographically
// coarse and maintained by hand.
package static

import (
	"context"

	"github.com/dhconnelly/rtreego"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
)

// Spatial index tuning. Bounds are 2D rectangles; the epsilon pads
// degenerate query rects so edge coordinates still intersect candidates.
const (
	dimensions  = 2
	minChildren = 2
	maxChildren = 8
	epsilon     = 1e-9
)

// Bound is a named rectangular lat/lon region with inclusive edges.
type Bound struct {
	District domain.District
	North    float64
	South    float64
	East     float64
	West     float64
}

// Contains reports whether the coordinate falls inside the bound. All four
// edges are inclusive.
func (b Bound) Contains(c domain.Coordinate) bool {
	return c.Latitude >= b.South && c.Latitude <= b.North &&
		c.Longitude >= b.West && c.Longitude <= b.East
}

// indexedBound places a Bound in the R-tree and remembers its declaration
// position, which is its match priority.
type indexedBound struct {
	Bound
	priority int
	rect     *rtreego.Rect
}

func (b *indexedBound) Bounds() *rtreego.Rect { return b.rect }

// Resolver implements domain.Resolver over a fixed table.
//
// Lookup order is the contract: the simulator rectangle first, then the
// district table with first-declared-wins priority (smaller boxes must be
// declared before broader ones they nest inside), then the regional
// fallbacks in declared order, then the ultimate fallback identifier.
type Resolver struct {
	simulator Bound
	tree      *rtreego.Rtree
	regions   []Bound
	fallback  domain.District
}

// New builds a resolver over the default table with the given ultimate
// fallback identifier.
func New(fallback domain.District) *Resolver {
	return NewWithTable(Districts(), Regions(), fallback)
}

// NewWithTable builds a resolver from explicit tables. The district slice
// order defines match priority.
func NewWithTable(districts, regions []Bound, fallback domain.District) *Resolver {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	for i, b := range districts {
		rect, err := rtreego.NewRect(
			rtreego.Point{b.South, b.West},
			[]float64{max(b.North-b.South, epsilon), max(b.East-b.West, epsilon)},
		)
		if err != nil {
			// Static data; a malformed entry is a programming error.
			panic("static: invalid bound for " + string(b.District) + ": " + err.Error())
		}
		tree.Insert(&indexedBound{Bound: b, priority: i, rect: rect})
	}
	return &Resolver{
		simulator: simulatorBound,
		tree:      tree,
		regions:   regions,
		fallback:  fallback,
	}
}

// RequiresCoordinate implements domain.Resolver.
func (r *Resolver) RequiresCoordinate() bool { return true }

// Resolve implements domain.Resolver. It never returns an error: every
// coordinate degrades to a regional or ultimate fallback.
func (r *Resolver) Resolve(_ context.Context, q domain.ResolveQuery) (domain.Resolution, error) {
	c := *q.Coordinate

	if r.simulator.Contains(c) {
		return domain.Resolution{District: r.simulator.District, Provenance: domain.ProvenanceSimulator}, nil
	}

	if best := r.lookup(c); best != nil {
		return domain.Resolution{District: best.District, Provenance: domain.ProvenanceStatic}, nil
	}

	for _, region := range r.regions {
		if region.Contains(c) {
			return domain.Resolution{District: region.District, Provenance: domain.ProvenanceRegional}, nil
		}
	}

	return domain.Resolution{District: r.fallback, Provenance: domain.ProvenanceFallback}, nil
}

// lookup returns the highest-priority district bound containing c, or nil.
// The R-tree prunes candidates; containment is re-checked exactly because
// the index pads degenerate rects.
func (r *Resolver) lookup(c domain.Coordinate) *indexedBound {
	rect, err := rtreego.NewRect(
		rtreego.Point{c.Latitude - epsilon, c.Longitude - epsilon},
		[]float64{2 * epsilon, 2 * epsilon},
	)
	if err != nil {
		return nil
	}

	var best *indexedBound
	for _, spatial := range r.tree.SearchIntersect(rect) {
		b := spatial.(*indexedBound)
		if !b.Contains(c) {
			continue
		}
		if best == nil || b.priority < best.priority {
			best = b
		}
	}
	return best
}
