package entity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Point is a WGS84 longitude/latitude pair.
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Orb converts the point to an orb.Point (x = longitude, y = latitude).
func (p Point) Orb() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// DistanceMeters returns the haversine distance between two points in meters.
func (p Point) DistanceMeters(other Point) float64 {
	return geo.DistanceHaversine(p.Orb(), other.Orb())
}

// IsValid reports whether the coordinates are within WGS84 bounds.
func (p Point) IsValid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}
