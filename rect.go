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

// checkRect validates an axis-aligned rectangle, represented by
// geom.Bounds. The four corners are implied by the two defining
// coordinates, so finiteness of Min and Max is the whole contract;
// axis alignment is structural and needs no runtime check.
func (c *Checker) checkRect(b *geom.Bounds) Report {
	var report Report
	if !finite(b.Min) {
		report = append(report, ProblemAtPosition{NotFinite, CoordPosition(0)})
	}
	if !finite(b.Max) {
		report = append(report, ProblemAtPosition{NotFinite, CoordPosition(1)})
	}
	return report
}
