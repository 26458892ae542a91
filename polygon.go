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

import "github.com/ctessum/geom"

// checkPolygon validates a polygon following the OGC rules: every
// boundary ring must be simple, interior rings must lie within the
// exterior ring, and rings may touch each other at isolated points but
// must not cross or share a boundary line. The checks are independent
// and all of them run; a polygon that fails several accumulates all of
// the corresponding problems.
func (c *Checker) checkPolygon(p geom.Polygon) Report {
	if len(p) == 0 {
		return Report{{TooFewPoints, RingPosition{ExteriorRing, nil}}}
	}
	var report Report
	for j, ring := range p {
		for _, pp := range c.checkRing(ring) {
			report = append(report, ProblemAtPosition{
				pp.Problem,
				RingPosition{polygonRingRole(j), pp.Position},
			})
		}
	}
	report = append(report, c.checkRingContainment(p)...)
	report = append(report, c.checkRingPairs(p)...)
	return report
}

// polygonRingRole maps an index into a polygon's ring slice to its role:
// ring 0 is the exterior, the rest are interior rings numbered from
// zero.
func polygonRingRole(j int) RingRole {
	if j == 0 {
		return ExteriorRing
	}
	return RingRole(j - 1)
}

// checkRingContainment verifies that every interior ring lies within the
// closed region bounded by the exterior ring. Touching the exterior
// boundary is permitted. Each offending ring is reported once, however
// many of its vertices stray.
func (c *Checker) checkRingContainment(p geom.Polygon) Report {
	exterior := p[0]
	if ringTooFewPoints(exterior) {
		// Containment against a degenerate exterior is undefined; its
		// TooFewPoints problem has already been reported.
		return nil
	}
	extSegs := ringSegments(exterior)
	var report Report
	for j, ring := range p[1:] {
		contained := true
		for _, pt := range ring {
			if !finite(pt) {
				continue
			}
			if c.pointInRing(pt, exterior) == geom.Outside {
				contained = false
				break
			}
		}
		if contained {
			// Every vertex is inside or on the boundary, but the ring
			// can still poke out by crossing the exterior between
			// vertices.
			cross, _ := c.ringsIntersect(ringSegments(ring), extSegs)
			contained = !cross
		}
		if !contained {
			report = append(report, ProblemAtPosition{
				RingNotContained,
				RingPosition{RingRole(j), nil},
			})
		}
	}
	return report
}

// checkRingPairs checks every unordered pair of rings. Interior rings
// must not cross each other or sit inside one another, and no two rings,
// the exterior included, may share a boundary line.
func (c *Checker) checkRingPairs(p geom.Polygon) Report {
	segs := make([][]segment, len(p))
	for i, ring := range p {
		segs[i] = ringSegments(ring)
	}
	var report Report
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			cross, overlap := c.ringsIntersect(segs[i], segs[j])
			if i > 0 {
				if !cross {
					// Boundaries that never cross can still bound
					// overlapping interiors when one ring is nested in
					// the other.
					cross = c.ringInsideRing(p[i], p[j]) || c.ringInsideRing(p[j], p[i])
				}
				if cross {
					report = append(report, ProblemAtPosition{
						InteriorRingsCross,
						RingPairPosition{polygonRingRole(i), polygonRingRole(j)},
					})
				}
			}
			// For an exterior/interior pair a proper crossing has
			// already been reported as RingNotContained; sharing a line
			// is the only new problem here.
			if overlap {
				report = append(report, ProblemAtPosition{
					RingsTouchOnLine,
					RingPairPosition{polygonRingRole(i), polygonRingRole(j)},
				})
			}
		}
	}
	return report
}
