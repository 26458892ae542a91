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

// checkPoint validates a single point. PostGIS places no validity
// constraint on points; here a point is valid if its coordinate is a
// finite number.
func (c *Checker) checkPoint(p geom.Point) Report {
	if !finite(p) {
		return Report{{NotFinite, nil}}
	}
	return nil
}
