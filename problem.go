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
	"fmt"
	"strings"
)

// A Problem identifies what is wrong with a geometry. Problems carry no
// state; the human-readable message is derived at formatting time.
type Problem int

const (
	// NotFinite means a coordinate is NaN or infinite.
	NotFinite Problem = iota
	// TooFewPoints means a line string or ring does not have enough
	// distinct coordinates for its kind.
	TooFewPoints
	// AllCoordsEqual means every coordinate of a line string coincides.
	AllCoordsEqual
	// IdenticalCoords means two coordinates that must be distinct are
	// equal.
	IdenticalCoords
	// CollinearCoords means the vertices of a triangle lie on one line.
	CollinearCoords
	// SelfIntersection means two segments of one ring cross or touch
	// away from a shared vertex of adjacent segments.
	SelfIntersection
	// RingNotContained means an interior ring of a polygon is not within
	// the closed region bounded by the exterior ring.
	RingNotContained
	// InteriorRingsCross means the interiors of two rings of one polygon
	// share area.
	InteriorRingsCross
	// RingsTouchOnLine means two rings of one polygon share a boundary
	// line rather than touching at isolated points.
	RingsTouchOnLine
	// DuplicatePolygon means two members of a MultiPolygon are identical.
	DuplicatePolygon
	// PolygonsCross means the boundaries of two MultiPolygon members
	// properly cross.
	PolygonsCross
	// PolygonsTouchOnLine means two MultiPolygon members share a
	// boundary line rather than touching at isolated points.
	PolygonsTouchOnLine
	// PolygonsOverlap means the interiors of two MultiPolygon members
	// share area without their boundaries crossing.
	PolygonsOverlap
)

func (p Problem) String() string {
	switch p {
	case NotFinite:
		return "coordinate is not finite"
	case TooFewPoints:
		return "too few points"
	case AllCoordsEqual:
		return "all coordinates are equal"
	case IdenticalCoords:
		return "identical coordinates"
	case CollinearCoords:
		return "collinear coordinates"
	case SelfIntersection:
		return "self-intersection"
	case RingNotContained:
		return "interior ring is not contained in the exterior ring"
	case InteriorRingsCross:
		return "interior rings cross"
	case RingsTouchOnLine:
		return "rings touch along a line"
	case DuplicatePolygon:
		return "duplicate polygon"
	case PolygonsCross:
		return "polygons cross"
	case PolygonsTouchOnLine:
		return "polygons touch along a line"
	case PolygonsOverlap:
		return "polygons overlap"
	default:
		panic(fmt.Sprintf("geomvalid: unknown problem %d", int(p)))
	}
}

// A Position locates a problem within the geometry that was validated.
// Positions compose: problems found in a nested geometry are wrapped in
// the position of the enclosing member on the way out.
type Position interface {
	fmt.Stringer
}

// CoordPosition locates a problem at a single coordinate index.
type CoordPosition int

func (p CoordPosition) String() string {
	return fmt.Sprintf("coordinate %d", int(p))
}

// SegmentPosition locates a problem at a pair of ring or line string
// segments, identified by the index of each segment's starting
// coordinate.
type SegmentPosition struct {
	First, Second int
}

func (p SegmentPosition) String() string {
	return fmt.Sprintf("segments %d and %d", p.First, p.Second)
}

// RingRole identifies a ring within a polygon: the exterior ring, or an
// interior ring numbered from zero.
type RingRole int

// ExteriorRing is the RingRole of a polygon's outer boundary.
const ExteriorRing RingRole = -1

func (r RingRole) String() string {
	if r == ExteriorRing {
		return "exterior ring"
	}
	return fmt.Sprintf("interior ring %d", int(r))
}

// RingPosition locates a problem within one ring of a polygon. Inner may
// be nil when the problem concerns the ring as a whole.
type RingPosition struct {
	Role  RingRole
	Inner Position
}

func (p RingPosition) String() string {
	if p.Inner == nil {
		return p.Role.String()
	}
	return fmt.Sprintf("%v of %v", p.Inner, p.Role)
}

// RingPairPosition locates a problem involving two rings of one polygon.
type RingPairPosition struct {
	A, B RingRole
}

func (p RingPairPosition) String() string {
	return fmt.Sprintf("%v and %v", p.A, p.B)
}

// MemberPosition locates a problem within one member of a multi-geometry
// or geometry collection. Inner may be nil when the problem concerns the
// member as a whole.
type MemberPosition struct {
	Index int
	Inner Position
}

func (p MemberPosition) String() string {
	if p.Inner == nil {
		return fmt.Sprintf("member %d", p.Index)
	}
	return fmt.Sprintf("%v of member %d", p.Inner, p.Index)
}

// PairPosition locates a problem involving two members of a
// multi-geometry.
type PairPosition struct {
	First, Second int
}

func (p PairPosition) String() string {
	return fmt.Sprintf("members %d and %d", p.First, p.Second)
}

// ProblemAtPosition pairs what is wrong with where it was found.
type ProblemAtPosition struct {
	Problem  Problem
	Position Position
}

func (p ProblemAtPosition) String() string {
	if p.Position == nil {
		return p.Problem.String()
	}
	return fmt.Sprintf("%v at %v", p.Problem, p.Position)
}

// A Report is the ordered sequence of problems found during one
// validation pass. An empty report means the geometry is valid. Reports
// are never mutated after they are returned.
type Report []ProblemAtPosition

// IsValid reports whether the validated geometry had no problems.
func (r Report) IsValid() bool {
	return len(r) == 0
}

// String renders the report as one line of text per problem, in the
// order the problems were discovered.
func (r Report) String() string {
	lines := make([]string, len(r))
	for i, p := range r {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}

// atMember re-tags each problem in r as belonging to member i of an
// enclosing multi-geometry or collection.
func (r Report) atMember(i int) Report {
	out := make(Report, len(r))
	for j, p := range r {
		out[j] = ProblemAtPosition{p.Problem, MemberPosition{i, p.Position}}
	}
	return out
}
