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
)

// A Line is a single segment between a start and an end point. It
// complements the types in github.com/ctessum/geom, which has no
// two-point geometry kind.
type Line struct {
	Start, End geom.Point
}

// Bounds gives the rectangular extents of the Line.
func (l Line) Bounds() *geom.Bounds {
	b := geom.NewBoundsPoint(l.Start)
	b.Extend(geom.NewBoundsPoint(l.End))
	return b
}

// Len returns the number of points in the receiver.
func (l Line) Len() int { return 2 }

// Points returns an iterator for the points in the receiver.
func (l Line) Points() func() geom.Point {
	var i int
	return func() geom.Point {
		i++
		if i == 1 {
			return l.Start
		}
		return l.End
	}
}

// Similar determines whether two geometries are similar within
// tolerance.
func (l Line) Similar(g geom.Geom, tolerance float64) bool {
	l2, ok := g.(Line)
	if !ok {
		return false
	}
	return l.Start.Similar(l2.Start, tolerance) && l.End.Similar(l2.End, tolerance)
}

// Transform shifts the coordinates of l according to t.
func (l Line) Transform(t proj.Transformer) (geom.Geom, error) {
	var err error
	l2 := Line{}
	l2.Start.X, l2.Start.Y, err = t(l.Start.X, l.Start.Y)
	if err != nil {
		return nil, err
	}
	l2.End.X, l2.End.Y, err = t(l.End.X, l.End.Y)
	return l2, err
}

// checkLine validates a Line: both coordinates must be finite and the
// segment must have nonzero length. A zero-length line is degenerate and
// is flagged as such.
func (c *Checker) checkLine(l Line) Report {
	var report Report
	if !finite(l.Start) {
		report = append(report, ProblemAtPosition{NotFinite, CoordPosition(0)})
	}
	if !finite(l.End) {
		report = append(report, ProblemAtPosition{NotFinite, CoordPosition(1)})
	}
	if l.Start.Equals(l.End) {
		report = append(report, ProblemAtPosition{IdenticalCoords, CoordPosition(0)})
	}
	return report
}
