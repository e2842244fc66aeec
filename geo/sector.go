// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geo provides geographic value types for the globe renderer.
//
// All angles are expressed in decimal degrees. Latitudes grow north,
// longitudes grow east, matching the usual geographic convention.
package geo

import "fmt"

// Sector is a rectangle on the globe bounded by two parallels and two
// meridians. South must not exceed North and West must not exceed East;
// sectors never wrap the antimeridian.
//
// Sector is a small value type and is passed by value throughout.
type Sector struct {
	// South is the minimum latitude in degrees.
	South float64

	// North is the maximum latitude in degrees.
	North float64

	// West is the minimum longitude in degrees.
	West float64

	// East is the maximum longitude in degrees.
	East float64
}

// FullSphere covers the entire globe.
var FullSphere = Sector{South: -90, North: 90, West: -180, East: 180}

// NewSector returns the sector with the given bounds.
func NewSector(south, north, west, east float64) Sector {
	return Sector{South: south, North: north, West: west, East: east}
}

// Width returns the longitudinal extent in degrees.
func (s Sector) Width() float64 { return s.East - s.West }

// Height returns the latitudinal extent in degrees.
func (s Sector) Height() float64 { return s.North - s.South }

// IsValid reports whether the sector has non-negative extent and lies
// within the globe.
func (s Sector) IsValid() bool {
	return s.South <= s.North && s.West <= s.East &&
		s.South >= -90 && s.North <= 90 &&
		s.West >= -180 && s.East <= 180
}

// IsEmpty reports whether the sector has zero area.
func (s Sector) IsEmpty() bool {
	return s.South >= s.North || s.West >= s.East
}

// Contains reports whether the point at (lat, lon) lies inside the
// sector. Points on the boundary are contained.
func (s Sector) Contains(lat, lon float64) bool {
	return lat >= s.South && lat <= s.North && lon >= s.West && lon <= s.East
}

// ContainsSector reports whether o lies entirely inside s.
func (s Sector) ContainsSector(o Sector) bool {
	return o.South >= s.South && o.North <= s.North &&
		o.West >= s.West && o.East <= s.East
}

// Intersects reports whether s and o share any area. Sectors that only
// touch along an edge do not intersect.
func (s Sector) Intersects(o Sector) bool {
	return s.West < o.East && o.West < s.East &&
		s.South < o.North && o.South < s.North
}

// Intersection returns the overlapping region of s and o. The second
// return value is false when the sectors do not intersect.
func (s Sector) Intersection(o Sector) (Sector, bool) {
	r := Sector{
		South: max(s.South, o.South),
		North: min(s.North, o.North),
		West:  max(s.West, o.West),
		East:  min(s.East, o.East),
	}
	if r.IsEmpty() {
		return Sector{}, false
	}
	return r, true
}

// Center returns the latitude and longitude of the sector's midpoint.
func (s Sector) Center() (lat, lon float64) {
	return (s.South + s.North) / 2, (s.West + s.East) / 2
}

// Subdivide splits the sector into four equal quadrants, ordered
// southwest, southeast, northwest, northeast. Shared edges are computed
// once so adjacent quadrants match bit-for-bit.
func (s Sector) Subdivide() [4]Sector {
	midLat := (s.South + s.North) / 2
	midLon := (s.West + s.East) / 2
	return [4]Sector{
		{South: s.South, North: midLat, West: s.West, East: midLon},
		{South: s.South, North: midLat, West: midLon, East: s.East},
		{South: midLat, North: s.North, West: s.West, East: midLon},
		{South: midLat, North: s.North, West: midLon, East: s.East},
	}
}

// String returns a compact representation for debugging and logging.
func (s Sector) String() string {
	return fmt.Sprintf("Sector(%g..%g, %g..%g)", s.South, s.North, s.West, s.East)
}
