package hornprofile

import "github.com/jbeda/geom"

// Polyline returns the profile wall as planar coordinates in mm, ready for
// plotting or geometric post-processing.
//
// Complexity: O(len(points)).
func Polyline(points []Point) []geom.Coord {
	out := make([]geom.Coord, len(points))

	var i int
	for i = range points {
		out[i] = geom.Coord{X: points[i].X, Y: points[i].Y}
	}

	return out
}

// Bounds returns the axis-aligned extent of the profile wall in mm.
// Width() is the axial depth of the horn; Max.Y is the mouth (or spiral)
// radius extreme. An empty profile yields the zero rectangle.
//
// Complexity: O(len(points)).
func Bounds(points []Point) geom.Rect {
	if len(points) == 0 {
		return geom.Rect{}
	}

	seed := geom.Coord{X: points[0].X, Y: points[0].Y}
	r := geom.Rect{Min: seed, Max: seed}

	var i int
	for i = 1; i < len(points); i++ {
		r.ExpandToContainCoord(geom.Coord{X: points[i].X, Y: points[i].Y})
	}

	return r
}
