// Package geo provides the walking-navigation distance and bearing helpers.
package geo

import "math"

const (
	earthRadiusMeters = 6371000

	// Average casual walking pace in meters per minute.
	walkingPace = 80
)

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Route describes the straight-line walk between two points.
type Route struct {
	Meters  float64 `json:"meters"`
	Minutes int     `json:"minutes"`
	Bearing string  `json:"bearing"`
}

// Haversine returns the great-circle distance between two points in meters.
func Haversine(from, to Point) float64 {
	dLat := radians(to.Lat - from.Lat)
	dLng := radians(to.Lng - from.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(from.Lat))*math.Cos(radians(to.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// WalkingMinutes estimates the walk time for a distance in meters,
// rounded to whole minutes with a floor of 1.
func WalkingMinutes(meters float64) int {
	minutes := int(math.Round(meters / walkingPace))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// CardinalBearing buckets the direction from one point to another into the
// eight compass directions. The angle is computed from planar lat/lng deltas,
// not a true geodesic bearing, which is fine at campus scale where the
// distances involved span at most a few city blocks.
//
// Identical points return "east" (the atan2(0,0) bucket) rather than NaN.
func CardinalBearing(from, to Point) string {
	dx := to.Lng - from.Lng
	dy := to.Lat - from.Lat
	angle := math.Atan2(dy, dx) * (180 / math.Pi)

	switch {
	case angle >= -22.5 && angle < 22.5:
		return "east"
	case angle >= 22.5 && angle < 67.5:
		return "northeast"
	case angle >= 67.5 && angle < 112.5:
		return "north"
	case angle >= 112.5 && angle < 157.5:
		return "northwest"
	case angle >= -67.5 && angle < -22.5:
		return "southeast"
	case angle >= -112.5 && angle < -67.5:
		return "south"
	case angle >= -157.5 && angle < -112.5:
		return "southwest"
	default:
		return "west"
	}
}

// Walk combines distance, estimated walking time, and coarse bearing.
func Walk(from, to Point) Route {
	meters := Haversine(from, to)
	return Route{
		Meters:  meters,
		Minutes: WalkingMinutes(meters),
		Bearing: CardinalBearing(from, to),
	}
}
