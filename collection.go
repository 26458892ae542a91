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

// checkGeometryCollection validates every member of a collection,
// including nested collections, re-tagging each member's problems with
// its index. Collections are trees by construction, so the recursion
// always terminates.
func (c *Checker) checkGeometryCollection(gc geom.GeometryCollection) Report {
	var report Report
	for i, g := range gc {
		report = append(report, c.Validate(g).atMember(i)...)
	}
	return report
}
