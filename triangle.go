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
	"github.com/ctessum/geom/proj"
	"github.com/twpayne/go-geom/xy/orientation"
)

// A Triangle is three vertices. To be valid the vertices must be
// distinct and must not be collinear. Like Line, it complements the
// types in github.com/ctessum/geom.
type Triangle [3]geom.Point

// Bounds gives the rectangular extents of the Triangle.
func (tr Triangle) Bounds() *geom.Bounds {
	b := geom.NewBoundsPoint(tr[0])
	b.Extend(geom.NewBoundsPoint(tr[1]))
	b.Extend(geom.NewBoundsPoint(tr[2]))
	return b
}

// Len returns the number of points in the receiver.
func (tr Triangle) Len() int { return len(tr) }

// Points returns an iterator for the points in the receiver.
func (tr Triangle) Points() func() geom.Point {
	var i int
	return func() geom.Point {
		i++
		return tr[i-1]
	}
}

// Similar determines whether two geometries are similar within
// tolerance.
func (tr Triangle) Similar(g geom.Geom, tolerance float64) bool {
	tr2, ok := g.(Triangle)
	if !ok {
		return false
	}
	for i := range tr {
		if !tr[i].Similar(tr2[i], tolerance) {
			return false
		}
	}
	return true
}

// Transform shifts the coordinates of tr according to t.
func (tr Triangle) Transform(t proj.Transformer) (geom.Geom, error) {
	var err error
	tr2 := Triangle{}
	for i, p := range tr {
		tr2[i].X, tr2[i].Y, err = t(p.X, p.Y)
		if err != nil {
			return nil, err
		}
	}
	return tr2, nil
}

// checkTriangle validates a Triangle. The orientation predicate is only
// consulted once every vertex is known to be finite.
func (c *Checker) checkTriangle(tr Triangle) Report {
	var report Report
	allFinite := true
	for i, pt := range tr {
		if !finite(pt) {
			allFinite = false
			report = append(report, ProblemAtPosition{NotFinite, CoordPosition(i)})
		}
	}
	if tr[0].Equals(tr[1]) || tr[0].Equals(tr[2]) {
		report = append(report, ProblemAtPosition{IdenticalCoords, CoordPosition(0)})
	}
	if tr[1].Equals(tr[2]) {
		report = append(report, ProblemAtPosition{IdenticalCoords, CoordPosition(1)})
	}
	if allFinite && c.orient.Orientation(tr[0], tr[1], tr[2]) == orientation.Collinear {
		report = append(report, ProblemAtPosition{CollinearCoords, nil})
	}
	return report
}
