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

// checkMultiPoint validates each member point.
func (c *Checker) checkMultiPoint(mp geom.MultiPoint) Report {
	var report Report
	for i, p := range mp {
		if !finite(p) {
			report = append(report, ProblemAtPosition{NotFinite, MemberPosition{i, nil}})
		}
	}
	return report
}

// checkMultiLineString validates each member line string, re-tagging its
// problems with the member index.
func (c *Checker) checkMultiLineString(ml geom.MultiLineString) Report {
	var report Report
	for i, ls := range ml {
		report = append(report, c.checkLineString(ls).atMember(i)...)
	}
	return report
}

// checkMultiPolygon validates each member polygon and then applies the
// pairwise rules: members must not be identical, their boundaries must
// not cross or share a line, and their interiors must not overlap.
// Touching at isolated points is permitted.
func (c *Checker) checkMultiPolygon(mp geom.MultiPolygon) Report {
	var report Report
	for i, p := range mp {
		report = append(report, c.checkPolygon(p).atMember(i)...)
	}
	for i := 0; i < len(mp); i++ {
		for j := i + 1; j < len(mp); j++ {
			report = append(report, c.checkPolygonPair(mp[i], mp[j], i, j)...)
		}
	}
	return report
}

// checkPolygonPair applies the pairwise MultiPolygon member rules to one
// unordered pair, naming both member indices in each problem position.
func (c *Checker) checkPolygonPair(p1, p2 geom.Polygon, i, j int) Report {
	if polygonsEqual(p1, p2) {
		// Identical members "touch everywhere"; the pairwise geometric
		// checks would drown that in noise, so report the duplication
		// alone.
		return Report{{DuplicatePolygon, PairPosition{i, j}}}
	}
	if len(p1) == 0 || len(p2) == 0 {
		return nil
	}
	var report Report
	cross, overlap := c.ringsIntersect(ringSegments(p1[0]), ringSegments(p2[0]))
	if cross {
		report = append(report, ProblemAtPosition{PolygonsCross, PairPosition{i, j}})
	}
	if overlap {
		report = append(report, ProblemAtPosition{PolygonsTouchOnLine, PairPosition{i, j}})
	}
	if !cross && !overlap &&
		(c.polygonContainsVertex(p2, p1[0]) || c.polygonContainsVertex(p1, p2[0])) {
		report = append(report, ProblemAtPosition{PolygonsOverlap, PairPosition{i, j}})
	}
	return report
}

// polygonContainsVertex reports whether any finite vertex of ring lies
// strictly inside p. Holes count: a vertex inside one of p's interior
// rings is not inside p, which is what lets one member of a MultiPolygon
// legally sit within another member's hole.
func (c *Checker) polygonContainsVertex(p geom.Polygon, ring []geom.Point) bool {
	for _, pt := range ring {
		if !finite(pt) {
			continue
		}
		if c.pointInPolygon(pt, p) == geom.Inside {
			return true
		}
	}
	return false
}

// polygonsEqual reports whether two polygons have identical coordinate
// sequences.
func polygonsEqual(p1, p2 geom.Polygon) bool {
	if len(p1) != len(p2) {
		return false
	}
	for i := range p1 {
		if len(p1[i]) != len(p2[i]) {
			return false
		}
		for j := range p1[i] {
			if !p1[i][j].Equals(p2[i][j]) {
				return false
			}
		}
	}
	return true
}
