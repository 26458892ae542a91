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
	"github.com/ctessum/geom"
	"github.com/twpayne/go-geom/xy/lineintersection"
)

// checkRing validates one polygon boundary ring. Rings may be explicitly
// closed (first coordinate equal to last) or implicitly closed, matching
// what github.com/ctessum/geom produces; the wrap-around edge takes part
// in the self-intersection scan either way.
//
// Segments touching a non-finite coordinate are excluded from the scan
// so that NaN never reaches the intersection predicates; the offending
// coordinates are still reported. A degenerate ring is reported as
// TooFewPoints and never reaches the scan at all.
func (c *Checker) checkRing(ring []geom.Point) Report {
	var report Report
	for i, pt := range ring {
		if !finite(pt) {
			report = append(report, ProblemAtPosition{NotFinite, CoordPosition(i)})
		}
	}
	if ringTooFewPoints(ring) {
		report = append(report, ProblemAtPosition{TooFewPoints, nil})
		return report
	}
	segs := ringSegments(ring)
	for i := 0; i < len(segs); i++ {
		if !segs[i].finite() {
			continue
		}
		for j := i + 1; j < len(segs); j++ {
			if !segs[j].finite() {
				continue
			}
			res := c.intersection(segs[i], segs[j])
			if !res.HasIntersection() {
				continue
			}
			adjacent := j == i+1 || (i == 0 && j == len(segs)-1)
			if adjacent && res.Type() == lineintersection.PointIntersection {
				// Adjacent edges meeting at their shared vertex is the
				// normal case. A collinear overlap between adjacent
				// edges is a spike and falls through.
				continue
			}
			report = append(report, ProblemAtPosition{
				SelfIntersection,
				SegmentPosition{segs[i].index, segs[j].index},
			})
		}
	}
	return report
}

// ringTooFewPoints reports whether ring has fewer than the three
// distinct vertices a closed boundary needs, ignoring the closing
// duplicate and consecutive repeated coordinates.
func ringTooFewPoints(ring []geom.Point) bool {
	return len(distinctVertices(ring)) < 3
}

// distinctVertices drops consecutive repeated coordinates and the
// closing duplicate from ring.
func distinctVertices(ring []geom.Point) []geom.Point {
	var out []geom.Point
	for i, pt := range ring {
		if i > 0 && pt.Equals(ring[i-1]) {
			continue
		}
		out = append(out, pt)
	}
	if len(out) > 1 && out[len(out)-1].Equals(out[0]) {
		out = out[:len(out)-1]
	}
	return out
}
