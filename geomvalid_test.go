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
	"math"
	"reflect"
	"testing"

	"github.com/ctessum/geom"
)

// sampleGeometries is a mixed bag of valid and invalid geometries of
// every supported kind, used by the cross-cutting tests below.
func sampleGeometries() []geom.Geom {
	return []geom.Geom{
		geom.Point{X: 1, Y: 2},
		geom.Point{X: math.NaN(), Y: 2},
		Line{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 1, Y: 1}},
		Line{Start: geom.Point{X: 1, Y: 1}, End: geom.Point{X: 1, Y: 1}},
		Triangle{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}},
		Triangle{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 4}},
		&geom.Bounds{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 1, Y: 1}},
		geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}},
		geom.LineString{{X: 0, Y: 0}},
		square(0, 0, 4, 4),
		geom.Polygon{{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 2}, {X: 4, Y: 2}, {X: 0, Y: 0}}},
		geom.MultiPoint{{X: 0, Y: 0}, {X: 1, Y: 1}},
		geom.MultiLineString{{{X: 0, Y: 0}, {X: 0, Y: 0}}},
		geom.MultiPolygon{square(0, 0, 1, 1), square(0, 0, 1, 1)},
		geom.GeometryCollection{geom.Point{X: 0, Y: 0}, geom.LineString{{X: 5, Y: 5}}},
	}
}

func TestValidAgreesWithExplainInvalidity(t *testing.T) {
	for i, g := range sampleGeometries() {
		valid := Valid(g)
		report := ExplainInvalidity(g)
		if valid != (report == nil) {
			t.Errorf("%d: Valid = %v but ExplainInvalidity = %v", i, valid, report)
		}
		if report != nil && report.IsValid() {
			t.Errorf("%d: ExplainInvalidity returned a non-nil empty report", i)
		}
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	for i, g := range sampleGeometries() {
		first := Validate(g)
		second := Validate(g)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%d: repeated validation disagrees: %v vs %v", i, first, second)
		}
	}
}

func TestMultiGeometryMemberDecomposition(t *testing.T) {
	// The problems of a multi-geometry member are exactly the problems
	// of validating the member on its own, re-tagged with its index.
	spike := geom.Polygon{{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 4},
		{X: 2, Y: 6}, {X: 2, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0},
	}}
	mp := geom.MultiPolygon{square(10, 10, 11, 11), spike}
	want := append(Report{}, Validate(spike).atMember(1)...)
	if have := Validate(mp); !reflect.DeepEqual(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}

	ml := geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 2, Y: 2}},
	}
	want = append(Report{}, Validate(ml[1]).atMember(1)...)
	if have := Validate(ml); !reflect.DeepEqual(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestValidCompositeMembersAreValid(t *testing.T) {
	// Every structural member of a valid composite geometry is valid on
	// its own.
	donut := geom.Polygon{
		square(0, 0, 10, 10)[0],
		square(2, 2, 8, 8)[0],
	}
	composites := []geom.Geom{
		geom.MultiPolygon{donut, square(4, 4, 6, 6)},
		geom.MultiLineString{
			{{X: 0, Y: 0}, {X: 1, Y: 1}},
			{{X: 2, Y: 2}, {X: 3, Y: 3}},
		},
		geom.GeometryCollection{
			geom.Point{X: 0, Y: 0},
			geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}},
			square(0, 0, 1, 1),
		},
	}
	for i, g := range composites {
		if !Valid(g) {
			t.Fatalf("%d: composite should be valid: %v", i, Validate(g))
		}
		var members []geom.Geom
		switch g := g.(type) {
		case geom.MultiPolygon:
			for _, m := range g {
				members = append(members, m)
			}
		case geom.MultiLineString:
			for _, m := range g {
				members = append(members, m)
			}
		case geom.GeometryCollection:
			members = g
		}
		for j, m := range members {
			if !Valid(m) {
				t.Errorf("%d: member %d of a valid composite is invalid: %v", i, j, Validate(m))
			}
		}
	}
}

func TestValidatePanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unsupported geometry")
		}
	}()
	Validate(nil)
}

func TestCheckerSharedAcrossGoroutines(t *testing.T) {
	// A Checker holds no per-validation state, so concurrent use must
	// give the same verdicts as serial use.
	geometries := sampleGeometries()
	want := make([]Report, len(geometries))
	for i, g := range geometries {
		want[i] = Validate(g)
	}
	done := make(chan int)
	for w := 0; w < 4; w++ {
		go func() {
			mismatch := -1
			for i, g := range geometries {
				if !reflect.DeepEqual(Validate(g), want[i]) {
					mismatch = i
					break
				}
			}
			done <- mismatch
		}()
	}
	for w := 0; w < 4; w++ {
		if i := <-done; i >= 0 {
			t.Errorf("concurrent validation of geometry %d disagrees with serial validation", i)
		}
	}
}
