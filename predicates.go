/*
Copyright © 2026 the InMAP authors.
This file is part of geomvalid.

geomvalid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geomvalid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geomvalid.  If not, see <http://www.gnu.org/licenses/>.
*/

package geomvalid

import (
	"math"

	"github.com/ctessum/geom"
	tgeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/lineintersection"
	"github.com/twpayne/go-geom/xy/lineintersector"
	"github.com/twpayne/go-geom/xy/orientation"
)

// An Orienter classifies the turn direction of the path a-b-c. The
// classification must have exact-sign guarantees: near-degenerate inputs
// must be classified correctly and consistently, which a naive
// floating-point cross product cannot do.
type Orienter interface {
	Orientation(a, b, c geom.Point) orientation.Type
}

// RobustOrienter is the default Orienter. It classifies orientation with
// the adaptive-precision determinant sign from github.com/twpayne/go-geom.
type RobustOrienter struct{}

// Orientation returns whether c lies counter-clockwise of, clockwise of,
// or on the directed line from a to b.
func (RobustOrienter) Orientation(a, b, c geom.Point) orientation.Type {
	return xy.OrientationIndex(
		tgeom.Coord{a.X, a.Y},
		tgeom.Coord{b.X, b.Y},
		tgeom.Coord{c.X, c.Y},
	)
}

// finite reports whether both components of p are finite numbers.
func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// A segment is one edge of a ring or line string. index is the index of
// the edge's starting coordinate in the original coordinate sequence.
type segment struct {
	a, b  geom.Point
	index int
}

func (s segment) degenerate() bool {
	return s.a.Equals(s.b)
}

func (s segment) finite() bool {
	return finite(s.a) && finite(s.b)
}

// ringSegments returns the edges of ring, adding the wrap-around edge
// when the ring is not explicitly closed. Zero-length edges from
// repeated vertices are dropped.
func ringSegments(ring []geom.Point) []segment {
	if len(ring) < 2 {
		return nil
	}
	segs := make([]segment, 0, len(ring))
	for i := 0; i < len(ring)-1; i++ {
		s := segment{ring[i], ring[i+1], i}
		if !s.degenerate() {
			segs = append(segs, s)
		}
	}
	if !ring[len(ring)-1].Equals(ring[0]) {
		segs = append(segs, segment{ring[len(ring)-1], ring[0], len(ring) - 1})
	}
	return segs
}

// properlyCross reports whether two segments intersect at a single point
// interior to both. Touching at an endpoint and collinear overlap are
// not proper crossings.
func (c *Checker) properlyCross(s1, s2 segment) bool {
	o1 := c.orient.Orientation(s1.a, s1.b, s2.a)
	o2 := c.orient.Orientation(s1.a, s1.b, s2.b)
	if o1 == orientation.Collinear || o2 == orientation.Collinear || o1 == o2 {
		return false
	}
	o3 := c.orient.Orientation(s2.a, s2.b, s1.a)
	o4 := c.orient.Orientation(s2.a, s2.b, s1.b)
	return o3 != orientation.Collinear && o4 != orientation.Collinear && o3 != o4
}

// intersection classifies how two segments intersect: not at all, at a
// single point, or along a collinear run.
func (c *Checker) intersection(s1, s2 segment) lineintersection.Result {
	return lineintersector.LineIntersectsLine(c.strategy,
		tgeom.Coord{s1.a.X, s1.a.Y}, tgeom.Coord{s1.b.X, s1.b.Y},
		tgeom.Coord{s2.a.X, s2.a.Y}, tgeom.Coord{s2.b.X, s2.b.Y},
	)
}

// touchOnly reports whether two segments share exactly one point and
// that point is an endpoint of at least one of them.
func (c *Checker) touchOnly(s1, s2 segment) bool {
	res := c.intersection(s1, s2)
	if !res.HasIntersection() || res.Type() == lineintersection.CollinearIntersection {
		return false
	}
	return !c.properlyCross(s1, s2)
}

// onSegment reports whether pt lies on segment s, endpoints included.
func (c *Checker) onSegment(pt geom.Point, s segment) bool {
	if c.orient.Orientation(s.a, s.b, pt) != orientation.Collinear {
		return false
	}
	return math.Min(s.a.X, s.b.X) <= pt.X && pt.X <= math.Max(s.a.X, s.b.X) &&
		math.Min(s.a.Y, s.b.Y) <= pt.Y && pt.Y <= math.Max(s.a.Y, s.b.Y)
}

// pointInRing determines the position of pt relative to the closed
// region bounded by ring. The structure is adapted from the ray-casting
// walk in github.com/ctessum/geom, with the edge-crossing decision made
// by the exact orientation predicate instead of coordinate comparisons.
// pt must be finite; non-finite ring coordinates are skipped.
func (c *Checker) pointInRing(pt geom.Point, ring []geom.Point) geom.WithinStatus {
	in := geom.Outside
	for _, s := range ringSegments(ring) {
		if !s.finite() {
			continue
		}
		if c.onSegment(pt, s) {
			return geom.OnEdge
		}
		if c.rayCrossesSegment(pt, s) {
			in = invert(in)
		}
	}
	return in
}

// rayCrossesSegment reports whether a horizontal ray from pt towards
// positive X crosses segment s. The half-open vertical interval keeps a
// ray through a shared vertex from being counted twice, and skips
// horizontal segments entirely. The caller has already established that
// pt does not lie on s.
func (c *Checker) rayCrossesSegment(pt geom.Point, s segment) bool {
	a, b := s.a, s.b
	if a.Y > b.Y {
		a, b = b, a
	}
	if pt.Y < a.Y || pt.Y >= b.Y {
		return false
	}
	return c.orient.Orientation(a, b, pt) == orientation.CounterClockwise
}

func invert(w geom.WithinStatus) geom.WithinStatus {
	if w == geom.Outside {
		return geom.Inside
	}
	return geom.Outside
}

// ringsIntersect scans two segment lists for proper crossings and for
// collinear overlaps. A single shared point is a permitted touch and is
// reported as neither.
func (c *Checker) ringsIntersect(s1, s2 []segment) (cross, overlap bool) {
	for _, a := range s1 {
		if !a.finite() {
			continue
		}
		for _, b := range s2 {
			if !b.finite() {
				continue
			}
			if c.properlyCross(a, b) {
				cross = true
			} else if res := c.intersection(a, b); res.Type() == lineintersection.CollinearIntersection {
				overlap = true
			}
			if cross && overlap {
				return cross, overlap
			}
		}
	}
	return cross, overlap
}

// ringInsideRing reports whether any finite vertex of r1 lies strictly
// inside r2.
func (c *Checker) ringInsideRing(r1, r2 []geom.Point) bool {
	for _, pt := range r1 {
		if !finite(pt) {
			continue
		}
		if c.pointInRing(pt, r2) == geom.Inside {
			return true
		}
	}
	return false
}

// pointInPolygon applies the even-odd rule over all of p's rings so that
// holes are respected, following pointInPolygonal in
// github.com/ctessum/geom.
func (c *Checker) pointInPolygon(pt geom.Point, p geom.Polygon) geom.WithinStatus {
	in := geom.Outside
	for _, ring := range p {
		switch c.pointInRing(pt, ring) {
		case geom.OnEdge:
			return geom.OnEdge
		case geom.Inside:
			in = invert(in)
		}
	}
	return in
}
