// Package geo holds the map collaborator contract: the router only knows how
// to nudge an initialized widget, never how the map is drawn.
package geo

import "math"

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat" mapstructure:"lat"`
	Lng float64 `json:"lng" mapstructure:"lng"`
}

// Pin is a labeled marker placed on the map.
type Pin struct {
	LatLng `mapstructure:",squash"`
	Title  string `json:"title" mapstructure:"title"`
}

// Widget is the externally initialized map handle. Implementations compute
// their viewport at resize time, not continuously, so the router notifies
// them after a screen activation settles.
type Widget interface {
	NotifyResize()
	SetCenter(LatLng)
}

const earthRadiusMeters = 6371000

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b LatLng) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
