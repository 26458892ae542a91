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
	"reflect"
	"testing"

	"github.com/ctessum/geom"
)

func TestPolygon(t *testing.T) {
	tests := []struct {
		name string
		p    geom.Polygon
		want Report
	}{
		{
			name: "triangle without closing coordinate",
			p:    geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}},
			want: nil,
		},
		{
			name: "explicitly closed square",
			p: geom.Polygon{
				{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
			},
			want: nil,
		},
		{
			name: "square with a hole",
			p: geom.Polygon{
				{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
				{{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 1}, {X: 1, Y: 1}},
			},
			want: nil,
		},
		{
			// Touching the exterior at a single point is a legal touch.
			name: "interior ring touches exterior at a point",
			p: geom.Polygon{
				{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
				{{X: 0, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 0, Y: 2}},
			},
			want: nil,
		},
		{
			name: "interior rings touch at a point",
			p: geom.Polygon{
				{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
				{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 2}},
				{{X: 3, Y: 2}, {X: 3.5, Y: 1}, {X: 3.75, Y: 2}, {X: 3.5, Y: 3}, {X: 3, Y: 2}},
			},
			want: nil,
		},
		{
			name: "interior rings share an edge",
			p: geom.Polygon{
				{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
				{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 2}},
				{{X: 3, Y: 2}, {X: 2, Y: 1}, {X: 3.5, Y: 1}, {X: 3.75, Y: 2}, {X: 3.5, Y: 3}, {X: 3, Y: 2}},
			},
			want: Report{
				{RingsTouchOnLine, RingPairPosition{RingRole(0), RingRole(1)}},
			},
		},
		{
			name: "interior rings cross",
			p: geom.Polygon{
				{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
				{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 2}},
				{{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 3.5, Y: 1}, {X: 3.75, Y: 2}, {X: 3.5, Y: 3}, {X: 3, Y: 2}, {X: 2, Y: 2}},
			},
			want: Report{
				{InteriorRingsCross, RingPairPosition{RingRole(0), RingRole(1)}},
			},
		},
		{
			name: "interior ring shares a line with the exterior",
			p: geom.Polygon{
				{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
				{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 0, Y: 2}},
			},
			want: Report{
				{RingsTouchOnLine, RingPairPosition{ExteriorRing, RingRole(0)}},
			},
		},
		{
			name: "interior ring escapes the exterior",
			p: geom.Polygon{
				{{X: 0.5, Y: 0.5}, {X: 3, Y: 0.5}, {X: 3, Y: 2.5}, {X: 0.5, Y: 2.5}, {X: 0.5, Y: 0.5}},
				{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2.5, Y: 2}, {X: 3.5, Y: 1}, {X: 1, Y: 1}},
			},
			want: Report{
				{RingNotContained, RingPosition{RingRole(0), nil}},
			},
		},
		{
			name: "interior ring fully outside the exterior",
			p: geom.Polygon{
				{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
				{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 5, Y: 5}},
			},
			want: Report{
				{RingNotContained, RingPosition{RingRole(0), nil}},
			},
		},
		{
			// Nested interior rings bound overlapping interiors even
			// though their boundaries never meet.
			name: "interior ring nested in another interior ring",
			p: geom.Polygon{
				{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
				{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}, {X: 2, Y: 2}},
				{{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 4}},
			},
			want: Report{
				{InteriorRingsCross, RingPairPosition{RingRole(0), RingRole(1)}},
			},
		},
		{
			name: "exterior ring with too few distinct coordinates",
			p:    geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 1}}},
			want: Report{{TooFewPoints, RingPosition{ExteriorRing, nil}}},
		},
		{
			name: "no rings at all",
			p:    geom.Polygon{},
			want: Report{{TooFewPoints, RingPosition{ExteriorRing, nil}}},
		},
		{
			// The spike's doubled vertex drops one zero-length edge, and
			// the two spike edges collide with the two edges along y=4.
			name: "exterior ring with a spike",
			p: geom.Polygon{{
				{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 4},
				{X: 2, Y: 6}, {X: 2, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0},
			}},
			want: Report{
				{SelfIntersection, RingPosition{ExteriorRing, SegmentPosition{2, 4}}},
				{SelfIntersection, RingPosition{ExteriorRing, SegmentPosition{2, 5}}},
				{SelfIntersection, RingPosition{ExteriorRing, SegmentPosition{3, 4}}},
				{SelfIntersection, RingPosition{ExteriorRing, SegmentPosition{3, 5}}},
			},
		},
		{
			name: "bowtie exterior ring",
			p: geom.Polygon{{
				{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 2}, {X: 4, Y: 2}, {X: 0, Y: 0},
			}},
			want: Report{
				{SelfIntersection, RingPosition{ExteriorRing, SegmentPosition{1, 3}}},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if have := Validate(test.p); !reflect.DeepEqual(have, test.want) {
				t.Errorf("have %v, want %v", have, test.want)
			}
		})
	}
}
