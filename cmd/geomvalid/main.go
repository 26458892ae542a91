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

// Command geomvalid is a command-line interface for checking the
// validity of geometries.
package main

import (
	"os"

	"github.com/spatialmodel/geomvalid/geomvalidutil"
)

func main() {
	if err := geomvalidutil.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
