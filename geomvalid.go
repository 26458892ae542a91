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

/*
Package geomvalid checks geometries from github.com/ctessum/geom against
the well-formedness rules of the OGC Simple Features specification and
reports every rule violation it finds, tagged with the position of the
violation within the geometry.

The package never repairs anything: an invalid geometry is a result, not
an error. Validation is a pure function of its input, so a Checker may be
shared freely between goroutines.
*/
package geomvalid

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// Version gives the version number of this library.
const Version = "0.1.0"

// A Checker validates geometries. The orientation predicate and the
// segment intersection strategy are pluggable so that verdicts can be
// cross-checked against a reference exact-arithmetic implementation.
type Checker struct {
	orient   Orienter
	strategy lineintersector.Strategy
}

// NewChecker returns a Checker that classifies point orientation with
// orient. Passing nil selects the robust default.
func NewChecker(orient Orienter) *Checker {
	if orient == nil {
		orient = RobustOrienter{}
	}
	return &Checker{
		orient:   orient,
		strategy: &lineintersector.RobustLineIntersector{},
	}
}

var defaultChecker = NewChecker(nil)

// Validate checks g against the rules for its geometry kind and returns
// every problem found, in discovery order: depth first, left to right
// over the structural members of g. An empty report means g is valid.
// Validate panics when given a geometry kind it does not know about.
func (c *Checker) Validate(g geom.Geom) Report {
	switch g := g.(type) {
	case geom.Point:
		return c.checkPoint(g)
	case *geom.Point:
		return c.checkPoint(*g)
	case Line:
		return c.checkLine(g)
	case Triangle:
		return c.checkTriangle(g)
	case *geom.Bounds:
		return c.checkRect(g)
	case geom.LineString:
		return c.checkLineString(g)
	case geom.Polygon:
		return c.checkPolygon(g)
	case geom.MultiPoint:
		return c.checkMultiPoint(g)
	case geom.MultiLineString:
		return c.checkMultiLineString(g)
	case geom.MultiPolygon:
		return c.checkMultiPolygon(g)
	case geom.GeometryCollection:
		return c.checkGeometryCollection(g)
	default:
		panic(fmt.Sprintf("geomvalid: unsupported geometry type %#v", g))
	}
}

// Valid reports whether g is well-formed.
func (c *Checker) Valid(g geom.Geom) bool {
	return c.Validate(g).IsValid()
}

// Validate checks g with the default robust predicates. See
// Checker.Validate.
func Validate(g geom.Geom) Report {
	return defaultChecker.Validate(g)
}

// Valid reports whether g is well-formed according to the default robust
// predicates.
func Valid(g geom.Geom) bool {
	return defaultChecker.Valid(g)
}

// ExplainInvalidity returns the problem report for g, or nil if g is
// valid.
func ExplainInvalidity(g geom.Geom) Report {
	if r := defaultChecker.Validate(g); !r.IsValid() {
		return r
	}
	return nil
}
