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

// checkLineString validates an open line string: at least two
// coordinates, all finite, and at least two of them distinct. A line
// string whose coordinates all coincide is a point pretending to be a
// line and is flagged even though its nominal coordinate count is
// sufficient.
func (c *Checker) checkLineString(ls geom.LineString) Report {
	var report Report
	for i, pt := range ls {
		if !finite(pt) {
			report = append(report, ProblemAtPosition{NotFinite, CoordPosition(i)})
		}
	}
	if len(ls) < 2 {
		report = append(report, ProblemAtPosition{TooFewPoints, nil})
		return report
	}
	allEqual := true
	for _, pt := range ls[1:] {
		if !pt.Equals(ls[0]) {
			allEqual = false
			break
		}
	}
	if allEqual {
		report = append(report, ProblemAtPosition{AllCoordsEqual, nil})
	}
	return report
}
